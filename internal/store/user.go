package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/usergate/usergate/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password.
	// Returns an AlreadyExistsError if the username or email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns a NotFoundError if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns a NotFoundError if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update modifies an existing user's details. The caller must provide a
	// complete user object including HashedPassword.
	// Returns a NotFoundError if the user does not exist and an
	// AlreadyExistsError if updating to a username or email that is taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns a NotFoundError if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
