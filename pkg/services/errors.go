// Package services provides standardized error types for service layer operations.
package services

import (
	"errors"
	"fmt"

	"github.com/linerate/linerate/pkg/engine"
	"github.com/linerate/linerate/pkg/models"
)

// ErrInvalidDefinition indicates the raw process definition failed schema or
// structural validation before a Process could be built.
var ErrInvalidDefinition = errors.New("invalid process definition")

// ServiceError wraps service-level errors with operation context.
type ServiceError struct {
	Op  string // Operation name
	Err error  // Underlying error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if an error is a definition validation error that
// should map to HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDefinition) || models.IsValidationError(err)
}

// IsNotFoundError checks if an error is an unknown step or template lookup
// that should map to HTTP 404.
func IsNotFoundError(err error) bool {
	return models.IsNotFoundError(err) || errors.Is(err, models.ErrTemplateNotFound)
}

// IsInvalidProcessError checks if an error is the engine's defensive
// structural rejection, mapped to HTTP 422.
func IsInvalidProcessError(err error) bool {
	return engine.IsInvalidProcess(err)
}
