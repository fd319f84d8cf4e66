package meshwriter

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
)

// STLASCIIWriter writes the ASCII STL format, grounded directly on the
// source's dumptriangles_ascii: "solid NAME" / per-facet "facet normal
// x y z" / "outer loop" / three "vertex x y z" lines / "endloop" /
// "endfacet" / "endsolid NAME".
type STLASCIIWriter struct{}

func (w *STLASCIIWriter) Format() string { return "stl-ascii" }

func (w *STLASCIIWriter) Write(buf *meshbuf.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", path, err, lattice.ErrOutputOpen)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	name := solidName(path)

	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return err
	}
	for t := range buf.All() {
		ax, ay, az := t.A.Unpack()
		bx, by, bz := t.B.Unpack()
		cx, cy, cz := t.C.Unpack()
		fmt.Fprintf(bw, "facet normal %s\n", t.Normal)
		fmt.Fprintf(bw, "outer loop\n")
		fmt.Fprintf(bw, "vertex %d %d %d\n", ax, ay, az)
		fmt.Fprintf(bw, "vertex %d %d %d\n", bx, by, bz)
		fmt.Fprintf(bw, "vertex %d %d %d\n", cx, cy, cz)
		fmt.Fprintf(bw, "endloop\n")
		fmt.Fprintf(bw, "endfacet\n")
	}
	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return err
	}
	return bw.Flush()
}
