package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same username or email).
	ErrDuplicate = errors.New("entity already exists")
)

// NotFoundError reports a missing entity and carries the identifier that was
// looked up. The identifier is structured data: response builders read it with
// errors.As instead of parsing it back out of the message.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

// NewNotFoundError creates a NotFoundError for the given resource and id.
func NewNotFoundError(resource string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Resource, e.ID)
}

// Is makes NotFoundError match ErrNotFound for errors.Is checks.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError reports a unique-constraint conflict and carries the
// offending field and value as structured data.
type AlreadyExistsError struct {
	Resource string
	Field    string
	Value    string
}

// NewAlreadyExistsError creates an AlreadyExistsError for the given
// resource, field and value.
func NewAlreadyExistsError(resource, field, value string) *AlreadyExistsError {
	return &AlreadyExistsError{Resource: resource, Field: field, Value: value}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists with %s: %s", e.Resource, e.Field, e.Value)
}

// Is makes AlreadyExistsError match ErrDuplicate for errors.Is checks.
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrDuplicate
}

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
