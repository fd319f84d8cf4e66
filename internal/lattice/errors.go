package lattice

import "errors"

// Sentinel errors for the taxonomy in spec §7. Call sites wrap these with
// fmt.Errorf("...: %w", ErrX) to attach context; callers check with
// errors.Is.
//
// AllocationFailed (buffer/job table cannot be allocated) has no sentinel
// here: Go's make/append report out-of-memory by panicking, not by
// returning an error, so there is no call site that could produce this
// error without a recover()-based design the rest of the tree doesn't use.
var (
	ErrArgumentInvalid  = errors.New("argument invalid")
	ErrImageLoad        = errors.New("image load failed")
	ErrImageRegion      = errors.New("image region prepare failed")
	ErrGeometryMismatch = errors.New("geometry mismatch")
	ErrOutputOpen       = errors.New("output open failed")
	ErrIllegalNormal    = errors.New("illegal normal")
)
