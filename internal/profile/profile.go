// Package profile defines named presets for the extraction engine's
// memory-growth parameters, generalizing the teacher's image-processing
// presets (target widths/formats/quality) to mesh-extraction presets
// (initial global and per-job buffer capacities). The cap run-compression
// limit is not profile-controlled; it is the spec-fixed maxRunLength
// constant in internal/extract/caps.go.
package profile

// Profile controls the extraction engine's allocation behavior.
type Profile struct {
	Name string

	// GlobalInitialCapacity is the global mesh's starting triangle
	// capacity. The default profile uses 1<<20 (spec §3: "initial
	// capacity >= 1,048,576 to amortise growth"); low-memory starts
	// below that.
	GlobalInitialCapacity int

	// JobInitialCapacity is the per-job staging buffer's starting
	// capacity (spec §4.4: fblrxy jobs start at capacity 10).
	JobInitialCapacity int
}

var profiles = map[string]Profile{
	"default": {
		Name:                  "default",
		GlobalInitialCapacity: 1 << 20,
		JobInitialCapacity:    10,
	},
	"large-model": {
		Name:                  "large-model",
		GlobalInitialCapacity: 1 << 24,
		JobInitialCapacity:    64,
	},
	"low-memory": {
		Name:                  "low-memory",
		GlobalInitialCapacity: 1 << 14,
		JobInitialCapacity:    4,
	},
}

// Get returns the named profile, falling back to "default" for an
// unknown name (the requested name is preserved on the returned value).
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["default"]
	p.Name = name
	return p
}
