package lattice

// Triangle is an axis-aligned unit-cube face: a normal tag plus three
// lattice points, wound so the right-hand rule on (B-A)x(C-A) reproduces
// the stored normal.
type Triangle struct {
	Normal Normal
	A, B, C Point
}

// Valid reports whether the triangle is a real (non-deleted) entry. A
// triangle is treated as deleted when its first vertex is the sentinel —
// push and grow never write a partially-sentinel triangle, so checking A
// alone is sufficient.
func (t Triangle) Valid() bool {
	return t.A != Sentinel
}
