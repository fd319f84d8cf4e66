// Package meshbuf implements the growable, append-only triangle buffer
// used both as per-job staging and as the final global mesh.
package meshbuf

import "github.com/sgust/imgseq2stl/internal/lattice"

// minCapacity is the smallest capacity ensure will grow an empty buffer to.
const minCapacity = 16

// Buffer is an ordered, append-only sequence of triangles with doubling
// growth. It is not safe for concurrent use; each goroutine that produces
// triangles owns its own Buffer.
type Buffer struct {
	triangles []lattice.Triangle
}

// New creates a Buffer pre-sized to hold initialCapacity triangles.
func New(initialCapacity int) *Buffer {
	b := &Buffer{}
	b.Ensure(initialCapacity)
	return b
}

// Len returns the number of triangles currently pushed.
func (b *Buffer) Len() int {
	return len(b.triangles)
}

// Cap returns the buffer's current capacity.
func (b *Buffer) Cap() int {
	return cap(b.triangles)
}

// Ensure grows the buffer's capacity to at least n by doubling from the
// current capacity (never by an exact fit), leaving count unchanged.
// Newly reserved slots beyond count are not individually initialized to
// the sentinel: Push always writes a real triangle, and slots in
// [count, capacity) are documented as undefined (spec §4.2), so only
// Valid-checked reads matter — which never touch them since they are
// outside Len().
func (b *Buffer) Ensure(n int) {
	if cap(b.triangles) >= n {
		return
	}
	newCap := cap(b.triangles)
	if newCap == 0 {
		newCap = minCapacity
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]lattice.Triangle, len(b.triangles), newCap)
	copy(grown, b.triangles)
	b.triangles = grown
}

// Push appends t. Callers must Ensure(Len()+1) beforehand; extractors
// batch Ensure calls per emitted triangle pair (spec §4.2).
func (b *Buffer) Push(t lattice.Triangle) {
	b.triangles = append(b.triangles, t)
}

// EnsurePair grows the buffer by two slots in one call, the batching unit
// every extractor uses since every emitted face is a pair of triangles.
func (b *Buffer) EnsurePair() {
	b.Ensure(len(b.triangles) + 2)
}

// Concat appends src's triangles to dst, in order, growing dst to
// 2*(dst.Len()+src.Len()) first if its current capacity is insufficient.
func (dst *Buffer) Concat(src *Buffer) {
	if src == nil || src.Len() == 0 {
		return
	}
	need := dst.Len() + src.Len()
	if dst.Cap() < need {
		grown := make([]lattice.Triangle, dst.Len(), 2*need)
		copy(grown, dst.triangles)
		dst.triangles = grown
	}
	dst.triangles = append(dst.triangles, src.triangles...)
}

// All returns every valid (non-sentinel) triangle in insertion order.
// Named for range-over-func use: for t := range buf.All() { ... }.
func (b *Buffer) All() func(yield func(lattice.Triangle) bool) {
	return func(yield func(lattice.Triangle) bool) {
		for _, t := range b.triangles {
			if !t.Valid() {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// ValidCount returns the number of non-sentinel triangles in the buffer.
func (b *Buffer) ValidCount() int {
	n := 0
	for _, t := range b.triangles {
		if t.Valid() {
			n++
		}
	}
	return n
}
