// Package raster loads layer images and exposes them as row-addressable
// on/off pixel planes, plus the per-layer lifecycle bookkeeping the
// pipeline needs to release images as soon as every job referencing them
// has finished.
package raster

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/sgust/imgseq2stl/internal/lattice"
)

// Layer is one decoded, binarized cross-section: a W*H plane of 0x00/0xff
// bytes in row-major order, plus the set of raw anomalous values seen
// during binarization (for the caller to log).
type Layer struct {
	Z         int
	W, H      int
	pixels    []byte // row-major, one byte per pixel: 0x00 or 0xff
	Anomalies []Anomaly
}

// Anomaly records a source pixel whose grayscale value was neither 0 nor
// 0xff.
type Anomaly struct {
	X, Y, Value int
}

// Load decodes the image at path and binarizes it into a Layer tagged
// with layer index z. imaging.Open decodes through the standard image
// registry, so the blank-imported bmp/tiff/webp decoders above extend it
// the same way they extend image.Decode.
func Load(path string, z int) (*Layer, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", path, err, lattice.ErrImageLoad)
	}
	return fromImage(img, z)
}

func fromImage(img image.Image, z int) (*Layer, error) {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("layer %d: decoded image has no pixel region (%dx%d): %w", z, w, h, lattice.ErrImageRegion)
	}

	l := &Layer{Z: z, W: w, H: h, pixels: make([]byte, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := gray.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			v := int(r >> 8)
			switch v {
			case 0:
				l.pixels[y*w+x] = 0x00
			case 0xff:
				l.pixels[y*w+x] = 0xff
			default:
				// Anomalous value: not a legal binary pixel. Logged by the
				// caller, folded into "on" per spec §4.3.1.
				l.Anomalies = append(l.Anomalies, Anomaly{X: x, Y: y, Value: v})
				l.pixels[y*w+x] = 0xff
			}
		}
	}
	return l, nil
}

// New builds a Layer directly from an on/off predicate, bypassing image
// decoding. Used by tests and by callers that already have a boolean
// voxel grid rather than an image file.
func New(z, w, h int, on func(x, y int) bool) *Layer {
	l := &Layer{Z: z, W: w, H: h, pixels: make([]byte, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if on(x, y) {
				l.pixels[y*w+x] = 0xff
			}
		}
	}
	return l
}

// On reports whether the voxel at (x, y) is present. x, y must be in
// range; callers only ever call this within [0,W)x[0,H).
func (l *Layer) On(x, y int) bool {
	return l.pixels[y*l.W+x] != 0
}

// Release drops the pixel buffer so the garbage collector can reclaim it
// once every job referencing this layer has finished. Safe to call once
// a layer's full lifecycle of uses has completed.
func (l *Layer) Release() {
	l.pixels = nil
}
