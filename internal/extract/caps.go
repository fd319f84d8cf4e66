// Package extract implements the six surface-extraction routines: outer
// caps (front/back/left/right, bottom/top), inter-row x-facets,
// inter-column y-facets, and inter-layer z-facets. Each examines one
// image (or, for z-facets, two consecutive images) and appends triangles
// for every voxel face lying on the boundary of the voxel union. None
// mutates the image pixel data.
package extract

import (
	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
	"github.com/sgust/imgseq2stl/internal/raster"
)

// maxRunLength is the longest horizontal on-run the bottom/top cap
// compressor folds into a single rectangle before closing it off (spec
// §4.6): runs close at strictly more than maxRunLength pixels, i.e. at
// 11 pixels wide.
const maxRunLength = 10

// AddBottom emits the bottom cap (plane z, normal Down) for the first
// layer, run-compressing consecutive on-pixels per row into rectangles of
// up to maxRunLength+1 voxels.
func AddBottom(buf *meshbuf.Buffer, img *raster.Layer, z int) {
	emitCap(buf, img, z, lattice.Down, capBottom)
}

// AddTop emits the top cap (plane z+1, normal Up) for the last layer,
// with the same run compression as AddBottom.
func AddTop(buf *meshbuf.Buffer, img *raster.Layer, z int) {
	emitCap(buf, img, z, lattice.Up, capTop)
}

type capKind int

const (
	capBottom capKind = iota
	capTop
)

// emitCap implements spec §4.3.1/§4.3.2 plus the §4.6 run compression: for
// each row, scan left to right; close the run when the pixel goes off or
// the run has reached maxRunLength+1 pixels, and flush any run still open
// at the row's last column (spec §8 E6: a 12-pixel run closes as an
// 11-wide rectangle plus a 1-wide rectangle, not one 12-wide rectangle).
func emitCap(buf *meshbuf.Buffer, img *raster.Layer, z int, n lattice.Normal, kind capKind) {
	w, h := img.W, img.H
	for y := 0; y < h; y++ {
		startX := -1
		for x := 0; x < w; x++ {
			on := img.On(x, y)
			if on {
				if startX < 0 {
					startX = x
					continue
				}
				if (x - startX) >= maxRunLength {
					emitCapRect(buf, startX, x+1, y, z, n, kind)
					startX = -1
				}
			} else if startX >= 0 {
				emitCapRect(buf, startX, x, y, z, n, kind)
				startX = -1
			}
		}
		if startX >= 0 {
			emitCapRect(buf, startX, w, y, z, n, kind)
		}
	}
}

// emitCapRect emits the two triangles tiling the rectangle
// [startX,endX) x [y,y+1) on the cap plane, using the same winding as a
// single-voxel cap face scaled in x.
func emitCapRect(buf *meshbuf.Buffer, startX, endX, y, z int, n lattice.Normal, kind capKind) {
	buf.EnsurePair()
	switch kind {
	case capBottom:
		a := lattice.Pack(startX, y, z)
		b := lattice.Pack(startX, y+1, z)
		c := lattice.Pack(endX, y, z)
		d := lattice.Pack(endX, y+1, z)
		buf.Push(lattice.Triangle{Normal: n, A: a, B: b, C: c})
		buf.Push(lattice.Triangle{Normal: n, A: b, B: d, C: c})
	case capTop:
		zp := z + 1
		a := lattice.Pack(startX, y, zp)
		b := lattice.Pack(endX, y, zp)
		c := lattice.Pack(startX, y+1, zp)
		d := lattice.Pack(endX, y+1, zp)
		buf.Push(lattice.Triangle{Normal: n, A: a, B: b, C: c})
		buf.Push(lattice.Triangle{Normal: n, A: c, B: b, C: d})
	}
}
