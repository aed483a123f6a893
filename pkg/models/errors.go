package models

import "errors"

// Validation errors raised while building a Process. They indicate a
// malformed or incomplete definition supplied by the caller.
var (
	ErrEmptyStepName     = errors.New("step name cannot be empty")
	ErrDuplicateStep     = errors.New("duplicate step name")
	ErrNoResources       = errors.New("step must have at least one resource")
	ErrEmptyResourceName = errors.New("resource name cannot be empty")
	ErrDuplicateResource = errors.New("duplicate resource name within step")
	ErrNonPositiveTime   = errors.New("processing time must be positive")
)

// ErrStepNotFound is returned by queries against an unknown step name.
var ErrStepNotFound = errors.New("step not found")

// IsValidationError checks if an error is a process definition validation
// error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyStepName) ||
		errors.Is(err, ErrDuplicateStep) ||
		errors.Is(err, ErrNoResources) ||
		errors.Is(err, ErrEmptyResourceName) ||
		errors.Is(err, ErrDuplicateResource) ||
		errors.Is(err, ErrNonPositiveTime)
}

// IsNotFoundError checks if an error is an unknown-step query error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrStepNotFound)
}
