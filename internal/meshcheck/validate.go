// Package meshcheck implements the structural checks from spec §8:
// watertightness (every edge shared by exactly two triangles of opposite
// orientation) and winding consistency (the stored normal agrees with
// the right-hand rule on the triangle's vertices). Generalizes the
// teacher's internal/manifest validation pattern (manifest fields ->
// referenced files) to mesh topology -> edge-sharing invariants.
package meshcheck

import (
	"fmt"

	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
)

type edgeKey struct {
	lo, hi lattice.Point
}

func keyOf(a, b lattice.Point) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// Watertight checks that every edge of buf is shared by exactly two
// triangles, traversed in opposite directions. It returns every
// violation found (not just the first), as human-readable messages.
func Watertight(buf *meshbuf.Buffer) []string {
	type dir struct{ fwd, bwd int }
	edges := make(map[edgeKey]*dir)

	touch := func(a, b lattice.Point) {
		k := keyOf(a, b)
		d, ok := edges[k]
		if !ok {
			d = &dir{}
			edges[k] = d
		}
		if a == k.lo {
			d.fwd++
		} else {
			d.bwd++
		}
	}

	for t := range buf.All() {
		touch(t.A, t.B)
		touch(t.B, t.C)
		touch(t.C, t.A)
	}

	var errs []string
	for k, d := range edges {
		total := d.fwd + d.bwd
		switch {
		case total != 2:
			errs = append(errs, fmt.Sprintf("edge %s: shared by %d triangle sides, want 2", describeEdge(k), total))
		case d.fwd != 1 || d.bwd != 1:
			errs = append(errs, fmt.Sprintf("edge %s: both sides wound the same direction", describeEdge(k)))
		}
	}
	return errs
}

func describeEdge(k edgeKey) string {
	ax, ay, az := k.lo.Unpack()
	bx, by, bz := k.hi.Unpack()
	return fmt.Sprintf("(%d,%d,%d)-(%d,%d,%d)", ax, ay, az, bx, by, bz)
}

// WindingConsistent checks that every triangle's stored normal agrees
// with the right-hand rule on (B-A)x(C-A). Since all coordinates are
// axis-aligned unit-cube vertices, the cross product's sign can be
// computed in integer arithmetic without overflow risk at realistic mesh
// sizes.
func WindingConsistent(buf *meshbuf.Buffer) []string {
	var errs []string
	for t := range buf.All() {
		if !t.Normal.Valid() {
			errs = append(errs, "triangle has an illegal normal tag")
			continue
		}
		ax, ay, az := t.A.Unpack()
		bx, by, bz := t.B.Unpack()
		cx, cy, cz := t.C.Unpack()

		ux, uy, uz := bx-ax, by-ay, bz-az
		vx, vy, vz := cx-ax, cy-ay, cz-az

		crossX := uy*vz - uz*vy
		crossY := uz*vx - ux*vz
		crossZ := ux*vy - uy*vx

		nx, ny, nz := t.Normal.Vector()
		if sign(crossX) != sign(nx) || sign(crossY) != sign(ny) || sign(crossZ) != sign(nz) {
			errs = append(errs, fmt.Sprintf("triangle at %s: winding does not match normal %s", describePoint(t.A), t.Normal))
		}
	}
	return errs
}

func describePoint(p lattice.Point) string {
	x, y, z := p.Unpack()
	return fmt.Sprintf("(%d,%d,%d)", x, y, z)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
