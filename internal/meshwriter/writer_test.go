package meshwriter

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/sgust/imgseq2stl/internal/extract"
	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
	"github.com/sgust/imgseq2stl/internal/meshreader"
	"github.com/sgust/imgseq2stl/internal/raster"
)

func singleVoxelMesh() *meshbuf.Buffer {
	l := raster.New(0, 1, 1, func(x, y int) bool { return true })
	buf := meshbuf.New(16)
	extract.AddBottom(buf, l, 0)
	extract.AddFront(buf, l, 0)
	extract.AddBack(buf, l, 0)
	extract.AddLeft(buf, l, 0)
	extract.AddRight(buf, l, 0)
	extract.AddX(buf, l, 0)
	extract.AddY(buf, l, 0)
	extract.AddTop(buf, l, 0)
	return buf
}

func TestRegistryHasAllBuiltins(t *testing.T) {
	r := NewRegistry()
	got := r.Available()
	want := []string{"stl-ascii", "stl-binary", "obj"}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i, f := range want {
		if got[i] != f {
			t.Errorf("Available()[%d] = %q, want %q", i, got[i], f)
		}
	}
}

func TestRegistryGetUnknownFormat(t *testing.T) {
	r := NewRegistry()
	if r.Get("ply") != nil {
		t.Error("expected nil writer for unknown format")
	}
}

func TestSTLASCIIRoundtrip(t *testing.T) {
	buf := singleVoxelMesh()
	dir := t.TempDir()
	path := filepath.Join(dir, "voxel.stl")

	w := &STLASCIIWriter{}
	if err := w.Write(buf, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := meshreader.ReadASCII(path)
	if err != nil {
		t.Fatalf("ReadASCII: %v", err)
	}
	if got.ValidCount() != buf.ValidCount() {
		t.Fatalf("roundtrip triangle count = %d, want %d", got.ValidCount(), buf.ValidCount())
	}
}

func TestSTLBinaryWritesExpectedByteLength(t *testing.T) {
	buf := singleVoxelMesh()
	dir := t.TempDir()
	path := filepath.Join(dir, "voxel.stl")

	w := &STLBinaryWriter{}
	if err := w.Write(buf, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	info, err := statFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := int64(80+4) + int64(buf.ValidCount())*50
	if info != want {
		t.Errorf("file size = %d, want %d", info, want)
	}
}

func TestWritersWrapErrOutputOpen(t *testing.T) {
	buf := singleVoxelMesh()
	// No such directory: os.Create must fail for every writer, and the
	// failure must be identifiable via errors.Is(err, lattice.ErrOutputOpen).
	badPath := filepath.Join(t.TempDir(), "does-not-exist", "out")

	writers := []Writer{&STLASCIIWriter{}, &STLBinaryWriter{}, &OBJWriter{}}
	for _, w := range writers {
		err := w.Write(buf, badPath)
		if err == nil {
			t.Fatalf("%s: expected error writing to %s", w.Format(), badPath)
		}
		if !errors.Is(err, lattice.ErrOutputOpen) {
			t.Errorf("%s: err = %v, want errors.Is ErrOutputOpen", w.Format(), err)
		}
	}
}

func TestOBJWriterDedupsVertices(t *testing.T) {
	buf := singleVoxelMesh()
	dir := t.TempDir()
	path := filepath.Join(dir, "voxel.obj")

	w := &OBJWriter{}
	if err := w.Write(buf, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines, err := readLines(path)
	if err != nil {
		t.Fatal(err)
	}
	vertCount, faceCount := 0, 0
	for _, l := range lines {
		switch {
		case len(l) > 2 && l[:2] == "v ":
			vertCount++
		case len(l) > 2 && l[:2] == "f ":
			faceCount++
		}
	}
	// A single voxel has 8 distinct corners, regardless of how many
	// triangles (12) reference them.
	if vertCount != 8 {
		t.Errorf("vertex count = %d, want 8", vertCount)
	}
	if faceCount != buf.ValidCount() {
		t.Errorf("face count = %d, want %d", faceCount, buf.ValidCount())
	}
}
