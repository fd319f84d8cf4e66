//go:build ignore

// gen_fixtures creates the binary layer-image stacks used by the E2E
// scenarios in the engine's test suite (spec §8 E1-E6): single voxel,
// empty layer, two stacked voxels, an L-shape, a checkerboard pattern
// for the filter tool, and a 12-pixel run for the bottom/top cap
// run-compression path.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]

	mustMkdir(filepath.Join(dir, "single_voxel"))
	mustMkdir(filepath.Join(dir, "empty_layer"))
	mustMkdir(filepath.Join(dir, "two_stacked"))
	mustMkdir(filepath.Join(dir, "l_shape"))
	mustMkdir(filepath.Join(dir, "checkerboard"))
	mustMkdir(filepath.Join(dir, "run12"))

	// E1: single voxel, 1x1, one on-pixel.
	writeBinary(filepath.Join(dir, "single_voxel", "slice_0000.png"), binaryImage(1, 1, func(x, y int) bool {
		return true
	}))

	// E2: empty layer, 4x4, all off.
	writeBinary(filepath.Join(dir, "empty_layer", "slice_0000.png"), binaryImage(4, 4, func(x, y int) bool {
		return false
	}))

	// E3: two stacked voxels, 1x1 at z=0 and z=1, both on.
	writeBinary(filepath.Join(dir, "two_stacked", "slice_0000.png"), binaryImage(1, 1, func(x, y int) bool {
		return true
	}))
	writeBinary(filepath.Join(dir, "two_stacked", "slice_0001.png"), binaryImage(1, 1, func(x, y int) bool {
		return true
	}))

	// E4: L-shape, 2x2, (0,0) and (1,0) on.
	writeBinary(filepath.Join(dir, "l_shape", "slice_0000.png"), binaryImage(2, 2, func(x, y int) bool {
		return y == 0 && (x == 0 || x == 1)
	}))

	// E5: checkerboard, 2x2, (0,0) and (1,1) on, (1,0) and (0,1) off.
	writeBinary(filepath.Join(dir, "checkerboard", "slice_0000.png"), binaryImage(2, 2, func(x, y int) bool {
		return (x == 0 && y == 0) || (x == 1 && y == 1)
	}))

	// E6: run compression, 12x1, all on.
	writeBinary(filepath.Join(dir, "run12", "slice_0000.png"), binaryImage(12, 1, func(x, y int) bool {
		return true
	}))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] wrote E1-E6 fixtures under %s\n", dir)
}

func mustMkdir(path string) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		panic(err)
	}
}

// binaryImage renders a pure black/white (0x00/0xff) grayscale image, the
// shape internal/raster.Load expects: any pixel not exactly 0 or 0xff is
// treated as an anomaly.
func binaryImage(w, h int, on func(x, y int) bool) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0x00)
			if on(x, y) {
				v = 0xff
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func writeBinary(path string, img *image.Gray) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}
