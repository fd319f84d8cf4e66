package meshwriter

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
)

// STLBinaryWriter writes the binary STL format: an 80-byte header, a
// little-endian uint32 triangle count, then 50 bytes per facet (12
// float32 normal+vertex components followed by a uint16 attribute byte
// count, always 0). This format is not in the source, which only emits
// ASCII — it is the supplement named by the source's own FIXME comment
// ("binary STL format or obj format").
type STLBinaryWriter struct{}

func (w *STLBinaryWriter) Format() string { return "stl-binary" }

func (w *STLBinaryWriter) Write(buf *meshbuf.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", path, err, lattice.ErrOutputOpen)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)

	var header [80]byte
	copy(header[:], "imgseq2stl binary STL")
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(buf.ValidCount())); err != nil {
		return err
	}

	var facet [50]byte
	for t := range buf.All() {
		nx, ny, nz := t.Normal.Vector()
		putFloat32(facet[0:4], float32(nx))
		putFloat32(facet[4:8], float32(ny))
		putFloat32(facet[8:12], float32(nz))

		ax, ay, az := t.A.Unpack()
		putFloat32(facet[12:16], float32(ax))
		putFloat32(facet[16:20], float32(ay))
		putFloat32(facet[20:24], float32(az))

		bx, by, bz := t.B.Unpack()
		putFloat32(facet[24:28], float32(bx))
		putFloat32(facet[28:32], float32(by))
		putFloat32(facet[32:36], float32(bz))

		cx, cy, cz := t.C.Unpack()
		putFloat32(facet[36:40], float32(cx))
		putFloat32(facet[40:44], float32(cy))
		putFloat32(facet[44:48], float32(cz))

		facet[48], facet[49] = 0, 0

		if _, err := bw.Write(facet[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
