package punch

import "errors"

// Punch domain errors. An illegal transition is NOT an error: it is reported
// through the ok=false path of PunchResult so the caller can re-enable the
// right controls.
var (
	ErrEventNotFound   = errors.New("punch event not found")
	ErrUnknownPunchType = errors.New("unknown punch type")
)
