package engine

import "errors"

// ErrInvalidInput is returned when a progress or target update carries a
// value that is negative, NaN or infinite. Updates are rejected rather than
// clamped so callers always see a consistent behavior.
var ErrInvalidInput = errors.New("invalid input value")
