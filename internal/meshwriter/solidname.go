package meshwriter

// solidName returns the STL solid/endsolid name: the output path exactly
// as passed to Write, used verbatim.
func solidName(path string) string {
	return path
}
