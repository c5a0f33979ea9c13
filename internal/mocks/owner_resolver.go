package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/usergate/usergate/internal/authz"
)

// MockOwnerResolver is a configurable mock implementation of
// authz.OwnerResolver. It counts lookups so tests can assert that ownership
// resolution was (or was not) invoked.
type MockOwnerResolver struct {
	// Owner is returned by FindOwnerSubject when Err is nil.
	Owner string

	// Err is returned by FindOwnerSubject when non-nil.
	Err error

	// Calls counts FindOwnerSubject invocations.
	Calls int

	// LastID records the identifier of the most recent lookup.
	LastID uuid.UUID
}

var _ authz.OwnerResolver = (*MockOwnerResolver)(nil)

func (m *MockOwnerResolver) FindOwnerSubject(ctx context.Context, resourceID uuid.UUID) (string, error) {
	m.Calls++
	m.LastID = resourceID
	if m.Err != nil {
		return "", m.Err
	}
	return m.Owner, nil
}
