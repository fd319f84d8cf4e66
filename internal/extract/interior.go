package extract

import (
	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
	"github.com/sgust/imgseq2stl/internal/raster"
)

// AddX scans each adjacent row pair (y, y+1) and emits the front/back
// facets that lie between a filled and an empty voxel in the same
// column, on plane y=y+1 (spec §4.3.5).
func AddX(buf *meshbuf.Buffer, img *raster.Layer, z int) {
	w, h := img.W, img.H
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			lower := img.On(x, y)
			upper := img.On(x, y+1)
			switch {
			case !lower && upper:
				buf.EnsurePair()
				a := lattice.Pack(x, y+1, z+1)
				b := lattice.Pack(x, y+1, z)
				c := lattice.Pack(x+1, y+1, z)
				d := lattice.Pack(x+1, y+1, z+1)
				buf.Push(lattice.Triangle{Normal: lattice.Front, A: a, B: b, C: c})
				buf.Push(lattice.Triangle{Normal: lattice.Front, A: a, B: c, C: d})
			case lower && !upper:
				buf.EnsurePair()
				a := lattice.Pack(x, y+1, z)
				b := lattice.Pack(x, y+1, z+1)
				c := lattice.Pack(x+1, y+1, z)
				d := lattice.Pack(x+1, y+1, z+1)
				buf.Push(lattice.Triangle{Normal: lattice.Back, A: a, B: b, C: c})
				buf.Push(lattice.Triangle{Normal: lattice.Back, A: b, B: d, C: c})
			}
		}
	}
}

// AddY scans each adjacent column pair (x, x+1) and emits the left/right
// facets that lie between a filled and an empty voxel in the same row,
// on plane x=x+1 (spec §4.3.6).
func AddY(buf *meshbuf.Buffer, img *raster.Layer, z int) {
	w, h := img.W, img.H
	for x := 0; x < w-1; x++ {
		for y := 0; y < h; y++ {
			left := img.On(x, y)
			right := img.On(x+1, y)
			switch {
			case !left && right:
				buf.EnsurePair()
				a := lattice.Pack(x+1, y, z)
				b := lattice.Pack(x+1, y, z+1)
				c := lattice.Pack(x+1, y+1, z)
				d := lattice.Pack(x+1, y+1, z+1)
				buf.Push(lattice.Triangle{Normal: lattice.Left, A: a, B: b, C: c})
				buf.Push(lattice.Triangle{Normal: lattice.Left, A: b, B: d, C: c})
			case left && !right:
				buf.EnsurePair()
				a := lattice.Pack(x+1, y, z)
				b := lattice.Pack(x+1, y+1, z)
				c := lattice.Pack(x+1, y, z+1)
				d := lattice.Pack(x+1, y+1, z+1)
				buf.Push(lattice.Triangle{Normal: lattice.Right, A: a, B: b, C: c})
				buf.Push(lattice.Triangle{Normal: lattice.Right, A: c, B: b, C: d})
			}
		}
	}
}

// AddZ compares the two layers separated by plane z (below is the
// numerically lower, previously loaded layer; above is the numerically
// higher, just-loaded layer — spec §9's resolution of the source's
// ambiguous addz orientation) and emits the up/down facets between a
// filled and an empty voxel through that plane (spec §4.3.7).
func AddZ(buf *meshbuf.Buffer, below, above *raster.Layer, z int) error {
	if below.W != above.W || below.H != above.H {
		return lattice.ErrGeometryMismatch
	}
	w, h := below.W, below.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lo := below.On(x, y)
			hi := above.On(x, y)
			switch {
			case !lo && hi:
				buf.EnsurePair()
				a := lattice.Pack(x, y, z)
				b := lattice.Pack(x, y+1, z)
				c := lattice.Pack(x+1, y, z)
				d := lattice.Pack(x+1, y+1, z)
				buf.Push(lattice.Triangle{Normal: lattice.Down, A: a, B: b, C: c})
				buf.Push(lattice.Triangle{Normal: lattice.Down, A: b, B: d, C: c})
			case lo && !hi:
				buf.EnsurePair()
				a := lattice.Pack(x, y+1, z)
				b := lattice.Pack(x, y, z)
				c := lattice.Pack(x+1, y, z)
				d := lattice.Pack(x+1, y+1, z)
				buf.Push(lattice.Triangle{Normal: lattice.Up, A: a, B: b, C: c})
				buf.Push(lattice.Triangle{Normal: lattice.Up, A: a, B: c, C: d})
			}
		}
	}
	return nil
}
