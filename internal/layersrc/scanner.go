// Package layersrc resolves an --input printf pattern against a layer
// range into a list of concrete file paths, failing fast (before any
// extraction work starts) if a layer is missing or the pattern is
// malformed — the Go-native replacement for the source's per-layer
// vips_image_new_from_file failing deep inside the main loop. Modeled on
// the teacher's directory-walking ScanImages, generalized to a fixed
// index range instead of a directory walk.
package layersrc

import (
	"fmt"
	"os"

	"github.com/sgust/imgseq2stl/internal/lattice"
)

// Source is one resolved layer file.
type Source struct {
	Z    int
	Path string
}

// Resolve expands pattern (a printf-style template with exactly one
// integer conversion) for every z in [first, last] and stats each
// resulting path, returning ErrImageLoad for the first one missing.
func Resolve(pattern string, first, last int) ([]Source, error) {
	if first < 0 {
		return nil, fmt.Errorf("--first must be >= 0: %w", lattice.ErrArgumentInvalid)
	}
	if last <= first {
		return nil, fmt.Errorf("--last must be > --first: %w", lattice.ErrArgumentInvalid)
	}
	if pattern == "" {
		return nil, fmt.Errorf("--input must be set: %w", lattice.ErrArgumentInvalid)
	}

	sources := make([]Source, 0, last-first+1)
	for z := first; z <= last; z++ {
		path := fmt.Sprintf(pattern, z)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w: %w", z, path, err, lattice.ErrImageLoad)
		}
		sources = append(sources, Source{Z: z, Path: path})
	}
	return sources, nil
}
