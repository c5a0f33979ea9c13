package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user := NewUser("alice", "alice@example.com", "password123")

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "password123", user.Password)
	assert.Empty(t, user.HashedPassword)
	assert.Equal(t, []string{RoleUser}, user.Roles, "new accounts start with the USER role")
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewUser_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := NewUser("a", "a@example.com", "password123")
	b := NewUser("b", "b@example.com", "password123")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestHasRole(t *testing.T) {
	t.Parallel()

	user := NewUser("alice", "alice@example.com", "password123")

	assert.True(t, user.HasRole(RoleUser))
	assert.False(t, user.HasRole(RoleAdmin))

	user.Roles = append(user.Roles, RoleAdmin)
	assert.True(t, user.HasRole(RoleAdmin))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewInvalidIDError("abc")

	assert.Equal(t, "Invalid UUID format: abc", err.Error())
	assert.Equal(t, "id", err.Field)
	assert.Equal(t, "abc", err.Value)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidationError_WrappedStillMatches(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("parsing request: %w", NewValidationError("email", "email must be valid"))

	assert.ErrorIs(t, wrapped, ErrValidation)

	var target *ValidationError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "email", target.Field)
}
