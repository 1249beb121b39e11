package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound = errors.New("shift not found")
)
