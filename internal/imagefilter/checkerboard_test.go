package imagefilter

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// TestE5CheckerboardBlanked verifies spec §8 E5: a 2x2 image with (0,0)
// and (1,1) on, (1,0) and (0,1) off, is fully blanked by the filter.
func TestE5CheckerboardBlanked(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 0xff})
	img.SetGray(1, 1, color.Gray{Y: 0xff})
	img.SetGray(1, 0, color.Gray{Y: 0x00})
	img.SetGray(0, 1, color.Gray{Y: 0x00})
	writePNG(t, in, img)

	blanked, err := Apply(in, out)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if blanked != 1 {
		t.Fatalf("blanked = %d, want 1", blanked)
	}

	result, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open result: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r, g, b, _ := result.At(x, y).RGBA()
			if r != 0 || g != 0 || b != 0 {
				t.Errorf("pixel (%d,%d) not blanked: rgb=(%d,%d,%d)", x, y, r>>8, g>>8, b>>8)
			}
		}
	}
}

func TestNonMatchingPatternLeftUntouched(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 0xff})
	img.SetGray(1, 1, color.Gray{Y: 0x00})
	img.SetGray(1, 0, color.Gray{Y: 0x00})
	img.SetGray(0, 1, color.Gray{Y: 0x00})
	writePNG(t, in, img)

	blanked, err := Apply(in, out)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if blanked != 0 {
		t.Fatalf("blanked = %d, want 0", blanked)
	}

	result, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open result: %v", err)
	}
	r, _, _, _ := result.At(0, 0).RGBA()
	if r>>8 != 0xff {
		t.Error("unrelated on-pixel was modified")
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}
