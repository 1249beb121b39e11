package face

import "errors"

// Face store domain errors
var (
	ErrImageNotFound = errors.New("face image not found")
)
