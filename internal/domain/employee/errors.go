package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCodeGeneration   = errors.New("could not generate a unique employee code")
)
