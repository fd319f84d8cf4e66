package report

import (
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/sgust/imgseq2stl/internal/lattice"
	"github.com/sgust/imgseq2stl/internal/meshbuf"
)

// MeshHash fingerprints buf's content with xxHash64, generalizing the
// teacher's hasher.ContentHash (used there for content-addressed
// filenames) to a mesh content check. Triangles are canonicalized
// (sorted by packed point tuple) before hashing so the result is
// independent of the pipeline's finish-order-dependent insertion
// sequence (spec §5) — two runs over the same voxel stack with a
// different --threads value hash identically.
func MeshHash(buf *meshbuf.Buffer) string {
	type key struct {
		normal  lattice.Normal
		a, b, c lattice.Point
	}
	var keys []key
	for t := range buf.All() {
		keys = append(keys, key{t.Normal, t.A, t.B, t.C})
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		if keys[i].b != keys[j].b {
			return keys[i].b < keys[j].b
		}
		if keys[i].c != keys[j].c {
			return keys[i].c < keys[j].c
		}
		return keys[i].normal < keys[j].normal
	})

	h := xxhash.New()
	var buf8 [8]byte
	for _, k := range keys {
		buf8[0] = byte(k.normal)
		h.Write(buf8[:1])
		binary.LittleEndian.PutUint64(buf8[:], uint64(k.a))
		h.Write(buf8[:])
		binary.LittleEndian.PutUint64(buf8[:], uint64(k.b))
		h.Write(buf8[:])
		binary.LittleEndian.PutUint64(buf8[:], uint64(k.c))
		h.Write(buf8[:])
	}
	return hex.EncodeToString(uint64ToBytes(h.Sum64()))
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
