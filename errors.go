package fweh

import "errors"

// Errors reported by the framing pipeline. All failures are local and
// synchronous; callers are expected to surface them without retrying.
var (
	// ErrInvalidGeometry reports a non-positive scale, a degenerate aspect
	// ratio or a canvas that rounds to zero area.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidRadius reports non-positive mask dimensions. Out-of-range
	// radius percentages are clamped, not rejected.
	ErrInvalidRadius = errors.New("invalid corner radius")

	// ErrInvalidBackground reports a background that cannot be synthesized,
	// such as a gradient with fewer than two stops.
	ErrInvalidBackground = errors.New("invalid background")

	// ErrInvalidShadow reports an opacity outside [0, 1] or a negative blur
	// radius.
	ErrInvalidShadow = errors.New("invalid shadow")

	// ErrDimensionMismatch reports compositing inputs of inconsistent size.
	// It indicates a programming error, not a user error.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
