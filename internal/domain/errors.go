package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel for all request-validation failures.
// Use errors.Is(err, ErrValidation) to classify an error as a 400.
var ErrValidation = errors.New("validation failed")

// ValidationError describes a single violated constraint. The field, the
// offending value and the message are carried as structured data so callers
// never need to re-parse formatted error text to build a response.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidIDError creates the ValidationError for a malformed resource
// identifier, carrying the offending value.
func NewInvalidIDError(value string) *ValidationError {
	return &ValidationError{
		Field:   "id",
		Value:   value,
		Message: fmt.Sprintf("Invalid UUID format: %s", value),
	}
}

// Error returns the human message. Field and Value stay structured metadata
// rather than being baked into the text.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes ValidationError match ErrValidation for errors.Is checks.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
