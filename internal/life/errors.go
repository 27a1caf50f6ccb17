package life

import "errors"

// All failures in this package are precondition violations on the caller's
// side. They are never produced during a normal advance.
var (
	// ErrInvalidDimension reports a non-positive grid width or height.
	ErrInvalidDimension = errors.New("grid dimensions must be positive")
	// ErrInvalidDensity reports a seeding density outside [0, 1].
	ErrInvalidDensity = errors.New("density must be within [0, 1]")
	// ErrOutOfBounds reports cell coordinates outside the grid.
	ErrOutOfBounds = errors.New("cell coordinates out of bounds")
	// ErrInvalidArea reports a non-positive grid area passed to the tracker.
	ErrInvalidArea = errors.New("grid area must be positive")
)
