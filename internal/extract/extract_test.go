package extract

import (
	"errors"
	"testing"

	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
	"github.com/sgust/imgseq2stl/internal/raster"
)

func countPerNormal(buf *meshbuf.Buffer) map[lattice.Normal]int {
	counts := map[lattice.Normal]int{}
	for t := range buf.All() {
		counts[t.Normal]++
	}
	return counts
}

// fullLayerSurface runs every extractor exactly the way the pipeline
// does for a single-layer stack (first == last): bottom cap, fblrxy,
// top cap, no z-facets.
func fullLayerSurface(buf *meshbuf.Buffer, l *raster.Layer, z int) {
	AddBottom(buf, l, z)
	AddFront(buf, l, z)
	AddBack(buf, l, z)
	AddLeft(buf, l, z)
	AddRight(buf, l, z)
	AddX(buf, l, z)
	AddY(buf, l, z)
	AddTop(buf, l, z)
}

// TestE1SingleVoxel: one 1x1 on-pixel, first=last=0 -> 12 triangles, two
// per face, six faces.
func TestE1SingleVoxel(t *testing.T) {
	l := raster.New(0, 1, 1, func(x, y int) bool { return true })
	buf := meshbuf.New(16)
	fullLayerSurface(buf, l, 0)

	if got := buf.ValidCount(); got != 12 {
		t.Fatalf("triangle count = %d, want 12", got)
	}
	counts := countPerNormal(buf)
	for _, n := range []lattice.Normal{lattice.Front, lattice.Back, lattice.Left, lattice.Right, lattice.Up, lattice.Down} {
		if counts[n] != 2 {
			t.Errorf("normal %v count = %d, want 2", n, counts[n])
		}
	}
}

// TestE2EmptyLayer: 4x4 all-off image -> zero facets.
func TestE2EmptyLayer(t *testing.T) {
	l := raster.New(0, 4, 4, func(x, y int) bool { return false })
	buf := meshbuf.New(16)
	fullLayerSurface(buf, l, 0)
	if got := buf.ValidCount(); got != 0 {
		t.Fatalf("triangle count = %d, want 0", got)
	}
}

// TestE3TwoStackedVoxels: two 1x1 on-layers, first=0 last=1 -> 20
// facets; the interior z=1 plane contributes nothing.
func TestE3TwoStackedVoxels(t *testing.T) {
	below := raster.New(0, 1, 1, func(x, y int) bool { return true })
	above := raster.New(1, 1, 1, func(x, y int) bool { return true })

	global := meshbuf.New(32)

	bottomBuf := meshbuf.New(16)
	AddBottom(bottomBuf, below, 0)
	global.Concat(bottomBuf)

	fblrxy0 := meshbuf.New(16)
	AddFront(fblrxy0, below, 0)
	AddBack(fblrxy0, below, 0)
	AddLeft(fblrxy0, below, 0)
	AddRight(fblrxy0, below, 0)
	AddX(fblrxy0, below, 0)
	AddY(fblrxy0, below, 0)
	global.Concat(fblrxy0)

	zBuf := meshbuf.New(16)
	if err := AddZ(zBuf, below, above, 1); err != nil {
		t.Fatalf("AddZ: %v", err)
	}
	global.Concat(zBuf)

	fblrxy1 := meshbuf.New(16)
	AddFront(fblrxy1, above, 1)
	AddBack(fblrxy1, above, 1)
	AddLeft(fblrxy1, above, 1)
	AddRight(fblrxy1, above, 1)
	AddX(fblrxy1, above, 1)
	AddY(fblrxy1, above, 1)
	global.Concat(fblrxy1)

	topBuf := meshbuf.New(16)
	AddTop(topBuf, above, 1)
	global.Concat(topBuf)

	if got := global.ValidCount(); got != 20 {
		t.Fatalf("triangle count = %d, want 20", got)
	}
	if zBuf.ValidCount() != 0 {
		t.Errorf("interior z=1 plane contributed %d facets, want 0", zBuf.ValidCount())
	}
}

// TestE4LShape: 2x2 with (0,0) and (1,0) on -> 20 facets; the shared
// interior face at x=1 between the two voxels contributes nothing.
func TestE4LShape(t *testing.T) {
	l := raster.New(0, 2, 2, func(x, y int) bool { return y == 0 && (x == 0 || x == 1) })
	buf := meshbuf.New(32)
	fullLayerSurface(buf, l, 0)
	if got := buf.ValidCount(); got != 20 {
		t.Fatalf("triangle count = %d, want 20", got)
	}
}

// TestE6RunCompression: 12x1 image, all on -> bottom cap produces
// exactly 4 triangles (an 11-wide rectangle plus a 1-wide rectangle),
// not 24.
func TestE6RunCompression(t *testing.T) {
	l := raster.New(0, 12, 1, func(x, y int) bool { return true })
	buf := meshbuf.New(16)
	AddBottom(buf, l, 0)
	if got := buf.ValidCount(); got != 4 {
		t.Fatalf("bottom cap triangle count = %d, want 4", got)
	}

	top := meshbuf.New(16)
	AddTop(top, l, 0)
	if got := top.ValidCount(); got != 4 {
		t.Fatalf("top cap triangle count = %d, want 4", got)
	}
}

// TestWindingMatchesNormalAcrossAllExtractors checks property 4 (spec
// §8): every triangle's declared normal agrees with the right-hand rule
// on its own vertices.
func TestWindingMatchesNormalAcrossAllExtractors(t *testing.T) {
	below := raster.New(0, 2, 2, func(x, y int) bool { return true })
	above := raster.New(1, 2, 2, func(x, y int) bool { return x == 0 })

	buf := meshbuf.New(64)
	AddBottom(buf, below, 0)
	AddFront(buf, below, 0)
	AddBack(buf, below, 0)
	AddLeft(buf, below, 0)
	AddRight(buf, below, 0)
	AddX(buf, below, 0)
	AddY(buf, below, 0)
	if err := AddZ(buf, below, above, 1); err != nil {
		t.Fatalf("AddZ: %v", err)
	}
	AddFront(buf, above, 1)
	AddBack(buf, above, 1)
	AddLeft(buf, above, 1)
	AddRight(buf, above, 1)
	AddX(buf, above, 1)
	AddY(buf, above, 1)
	AddTop(buf, above, 1)

	for tr := range buf.All() {
		ax, ay, az := tr.A.Unpack()
		bx, by, bz := tr.B.Unpack()
		cx, cy, cz := tr.C.Unpack()
		ux, uy, uz := bx-ax, by-ay, bz-az
		vx, vy, vz := cx-ax, cy-ay, cz-az
		crossX := uy*vz - uz*vy
		crossY := uz*vx - ux*vz
		crossZ := ux*vy - uy*vx
		nx, ny, nz := tr.Normal.Vector()
		dot := crossX*nx + crossY*ny + crossZ*nz
		if dot <= 0 {
			t.Errorf("triangle %+v: winding does not agree with normal (dot=%d)", tr, dot)
		}
	}
}

func TestAddZRejectsMismatchedGeometry(t *testing.T) {
	below := raster.New(0, 2, 2, func(x, y int) bool { return true })
	above := raster.New(1, 3, 3, func(x, y int) bool { return true })
	buf := meshbuf.New(16)
	err := AddZ(buf, below, above, 1)
	if err == nil {
		t.Fatal("expected error for mismatched layer geometry")
	}
	if !errors.Is(err, lattice.ErrGeometryMismatch) {
		t.Errorf("error %v does not wrap ErrGeometryMismatch", err)
	}
}
