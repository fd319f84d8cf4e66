// Package meshwriter serializes a finished mesh to an output format,
// generalizing the teacher's internal/encoder Encoder/Registry pair
// (there: image format -> bytes) to mesh format -> file. Unlike the
// teacher's AVIF/WebP encoders, which shell out and may be unavailable,
// every writer here is pure Go and always available — the registry still
// exists because the source's own FIXME ("binary STL format or obj
// format") names exactly these three formats as the natural output set.
package meshwriter

import (
	"github.com/sgust/imgseq2stl/internal/meshbuf"
)

// Writer serializes a mesh to path in one specific format.
type Writer interface {
	// Format returns the output format name ("stl-ascii", "stl-binary",
	// "obj").
	Format() string

	// Write serializes buf's valid triangles to path.
	Write(buf *meshbuf.Buffer, path string) error
}

// Registry holds all available mesh writers.
type Registry struct {
	writers map[string]Writer
}

// NewRegistry creates a registry with every built-in writer registered.
func NewRegistry() *Registry {
	r := &Registry{writers: make(map[string]Writer)}
	for _, w := range []Writer{
		&STLASCIIWriter{},
		&STLBinaryWriter{},
		&OBJWriter{},
	} {
		r.writers[w.Format()] = w
	}
	return r
}

// Get returns the writer for format, or nil if unknown.
func (r *Registry) Get(format string) Writer {
	return r.writers[format]
}

// Available returns every registered format name, in priority order.
func (r *Registry) Available() []string {
	var out []string
	for _, f := range []string{"stl-ascii", "stl-binary", "obj"} {
		if _, ok := r.writers[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// DefaultFormat is the format used when --format is not given (spec
// §4.5: ASCII STL is the baseline, required output).
const DefaultFormat = "stl-ascii"
