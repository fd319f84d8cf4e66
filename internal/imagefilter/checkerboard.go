// Package imagefilter implements the checkerboard preprocessing filter
// (spec §4.1/§8 E5): blanking 2x2 pixel patterns that would otherwise
// produce a non-manifold edge once the voxel stack is extracted. This is
// a direct port of the source's filterimg.c, using
// github.com/disintegration/imaging for decode/encode the same way
// internal/raster does, rather than vips regions.
package imagefilter

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Apply reads the image at inPath, blanks every 2x2 checkerboard pattern,
// and writes the result to outPath. For every (x, y) with x < W-1 and
// y < H-1: if pixel(x,y) == pixel(x+1,y+1) and pixel(x+1,y) ==
// pixel(x,y+1), all four pixels are overwritten to black (first three
// channels zeroed, matching filterimg.c; alpha, if any, is left alone).
func Apply(inPath, outPath string) (int, error) {
	src, err := imaging.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", inPath, err)
	}

	nrgba := imaging.Clone(src)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()

	blanked := 0
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			a := nrgba.NRGBAAt(x, y)
			b := nrgba.NRGBAAt(x+1, y+1)
			c := nrgba.NRGBAAt(x+1, y)
			d := nrgba.NRGBAAt(x, y+1)
			if sameRGB(a, b) && sameRGB(c, d) {
				blankRGB(nrgba, x, y)
				blankRGB(nrgba, x+1, y)
				blankRGB(nrgba, x, y+1)
				blankRGB(nrgba, x+1, y+1)
				blanked++
			}
		}
	}

	if err := imaging.Save(nrgba, outPath); err != nil {
		return 0, fmt.Errorf("save %s: %w", outPath, err)
	}
	return blanked, nil
}

func sameRGB(a, b color.NRGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}

func blankRGB(img *image.NRGBA, x, y int) {
	c := img.NRGBAAt(x, y)
	c.R, c.G, c.B = 0, 0, 0
	img.SetNRGBA(x, y, c)
}
