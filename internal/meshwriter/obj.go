package meshwriter

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
)

// OBJWriter writes Wavefront OBJ: a deduplicated vertex list ("v x y z")
// followed by one face ("f a b c") per triangle referencing 1-based
// vertex indices. Like stl-binary, this format is a supplement named by
// the source's own FIXME comment rather than anything the source itself
// emits; OBJ's face-list shape is the reason it needs vertex dedup where
// the STL writers do not.
type OBJWriter struct{}

func (w *OBJWriter) Format() string { return "obj" }

func (w *OBJWriter) Write(buf *meshbuf.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", path, err, lattice.ErrOutputOpen)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)

	index := make(map[lattice.Point]int)
	var order []lattice.Point
	indexOf := func(p lattice.Point) int {
		if i, ok := index[p]; ok {
			return i
		}
		order = append(order, p)
		i := len(order)
		index[p] = i
		return i
	}

	type face struct{ a, b, c int }
	var faces []face
	for t := range buf.All() {
		faces = append(faces, face{indexOf(t.A), indexOf(t.B), indexOf(t.C)})
	}

	fmt.Fprintf(bw, "# imgseq2stl mesh export\n")
	for _, p := range order {
		x, y, z := p.Unpack()
		fmt.Fprintf(bw, "v %d %d %d\n", x, y, z)
	}
	for _, fc := range faces {
		fmt.Fprintf(bw, "f %d %d %d\n", fc.a, fc.b, fc.c)
	}

	return bw.Flush()
}
