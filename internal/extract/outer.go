package extract

import (
	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
	"github.com/sgust/imgseq2stl/internal/raster"
)

// AddFront scans row y=0 and emits the outer front face (plane y=0,
// normal Front) for every on pixel.
func AddFront(buf *meshbuf.Buffer, img *raster.Layer, z int) {
	w := img.W
	for x := 0; x < w; x++ {
		if !img.On(x, 0) {
			continue
		}
		buf.EnsurePair()
		a := lattice.Pack(x, 0, z+1)
		b := lattice.Pack(x, 0, z)
		c := lattice.Pack(x+1, 0, z)
		d := lattice.Pack(x+1, 0, z+1)
		buf.Push(lattice.Triangle{Normal: lattice.Front, A: a, B: b, C: c})
		buf.Push(lattice.Triangle{Normal: lattice.Front, A: a, B: c, C: d})
	}
}

// AddBack scans row y=H-1 and emits the outer back face (plane y=H,
// normal Back) for every on pixel.
func AddBack(buf *meshbuf.Buffer, img *raster.Layer, z int) {
	w, h := img.W, img.H
	for x := 0; x < w; x++ {
		if !img.On(x, h-1) {
			continue
		}
		buf.EnsurePair()
		a := lattice.Pack(x, h, z)
		b := lattice.Pack(x, h, z+1)
		c := lattice.Pack(x+1, h, z)
		d := lattice.Pack(x+1, h, z+1)
		buf.Push(lattice.Triangle{Normal: lattice.Back, A: a, B: b, C: c})
		buf.Push(lattice.Triangle{Normal: lattice.Back, A: b, B: d, C: c})
	}
}

// AddLeft scans column x=0 and emits the outer left face (plane x=0,
// normal Left) for every on pixel.
func AddLeft(buf *meshbuf.Buffer, img *raster.Layer, z int) {
	h := img.H
	for y := 0; y < h; y++ {
		if !img.On(0, y) {
			continue
		}
		buf.EnsurePair()
		a := lattice.Pack(0, y, z)
		b := lattice.Pack(0, y, z+1)
		c := lattice.Pack(0, y+1, z)
		d := lattice.Pack(0, y+1, z+1)
		buf.Push(lattice.Triangle{Normal: lattice.Left, A: a, B: b, C: c})
		buf.Push(lattice.Triangle{Normal: lattice.Left, A: b, B: d, C: c})
	}
}

// AddRight scans column x=W-1 and emits the outer right face (plane x=W,
// normal Right) for every on pixel.
func AddRight(buf *meshbuf.Buffer, img *raster.Layer, z int) {
	w, h := img.W, img.H
	for y := 0; y < h; y++ {
		if !img.On(w-1, y) {
			continue
		}
		buf.EnsurePair()
		a := lattice.Pack(w, y, z)
		b := lattice.Pack(w, y+1, z)
		c := lattice.Pack(w, y, z+1)
		d := lattice.Pack(w, y+1, z+1)
		buf.Push(lattice.Triangle{Normal: lattice.Right, A: a, B: b, C: c})
		buf.Push(lattice.Triangle{Normal: lattice.Right, A: b, B: d, C: c})
	}
}
