package raster

import "sync"

// Use tags one of the ways a layer can be referenced by pipeline work, per
// spec §3/§9's recommended flag-set form (replacing the source's "release
// at refcount 3" arithmetic).
type Use int

const (
	// UseFblrxy marks the single-image front/back/left/right/x/y job for
	// this layer's own image.
	UseFblrxy Use = iota
	// UseBelow marks this layer being read as the "below" image of the
	// z-job for the layer above it.
	UseBelow
	// UseAbove marks this layer being read as the "above" image of the
	// z-job for the layer below it.
	UseAbove
	// UseCap marks the bottom-cap (first layer) or top-cap (last layer)
	// step.
	UseCap
	useCount
)

// Ref tracks which uses of a layer have completed and releases the layer's
// pixel buffer once every use relevant to its position in the stack
// (interior vs boundary) has been marked done.
type Ref struct {
	layer *Layer
	mu    sync.Mutex
	done  [useCount]bool
	want  [useCount]bool
}

// NewRef creates a Ref for layer, expecting exactly the uses named in
// wanted to complete before release.
func NewRef(layer *Layer, wanted ...Use) *Ref {
	r := &Ref{layer: layer}
	for _, u := range wanted {
		r.want[u] = true
	}
	return r
}

// Layer returns the underlying layer. Valid until Release fires.
func (r *Ref) Layer() *Layer {
	return r.layer
}

// Mark records that use u has completed for this layer, releasing the
// layer's pixel buffer once every wanted use is done.
func (r *Ref) Mark(u Use) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done[u] = true
	for i := range r.want {
		if r.want[i] && !r.done[i] {
			return
		}
	}
	r.layer.Release()
}
