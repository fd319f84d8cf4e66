// Package meshreader parses a written mesh back into a Buffer, the
// read-side counterpart to meshwriter used by the validate and inspect
// CLI commands. Only ASCII STL is supported for reading since it is the
// one required, canonical format (spec §4.5); stl-binary and obj are
// write-only exports.
package meshreader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
)

// ReadASCII parses an ASCII STL file written by meshwriter.STLASCIIWriter.
func ReadASCII(path string) (*meshbuf.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := meshbuf.New(16)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var normal lattice.Normal
	var verts [3]lattice.Point
	vertCount := 0

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "facet normal "):
			n, err := parseNormal(line[len("facet normal "):])
			if err != nil {
				return nil, err
			}
			normal = n
			vertCount = 0
		case strings.HasPrefix(line, "vertex "):
			p, err := parsePoint(line[len("vertex "):])
			if err != nil {
				return nil, err
			}
			if vertCount < 3 {
				verts[vertCount] = p
			}
			vertCount++
		case line == "endfacet":
			if vertCount != 3 {
				return nil, fmt.Errorf("facet with %d vertices, want 3", vertCount)
			}
			buf.EnsurePair()
			buf.Push(lattice.Triangle{Normal: normal, A: verts[0], B: verts[1], C: verts[2]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return buf, nil
}

func parseNormal(s string) (lattice.Normal, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, fmt.Errorf("malformed normal line: %q", s)
	}
	x, _ := strconv.Atoi(fields[0])
	y, _ := strconv.Atoi(fields[1])
	z, _ := strconv.Atoi(fields[2])
	for n := lattice.Front; n <= lattice.Down; n++ {
		nx, ny, nz := n.Vector()
		if nx == x && ny == y && nz == z {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %d %d %d", lattice.ErrIllegalNormal, x, y, z)
}

func parsePoint(s string) (lattice.Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, fmt.Errorf("malformed vertex line: %q", s)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, err
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, err
	}
	z, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, err
	}
	return lattice.Pack(x, y, z), nil
}
