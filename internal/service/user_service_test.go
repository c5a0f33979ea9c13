package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usergate/usergate/internal/domain"
	"github.com/usergate/usergate/internal/mocks"
	"github.com/usergate/usergate/internal/service"
	"github.com/usergate/usergate/internal/service/auth"
	"github.com/usergate/usergate/internal/store"
)

func newService(t *testing.T) *service.UserService {
	t.Helper()
	return service.NewUserService(mocks.NewMemoryUserStore(), auth.NewBcryptHasher(), nil)
}

func TestCreate_HashesPassword(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	assert.Empty(t, user.Password, "plaintext is cleared after hashing")
	assert.NotEmpty(t, user.HashedPassword)
	assert.NotEqual(t, "password123", user.HashedPassword)
	assert.Equal(t, []string{domain.RoleUser}, user.Roles)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "alice", "other@example.com", "password123")
	assert.True(t, store.IsDuplicateError(err))
}

func TestUpdate_RehashesOnlyWhenPasswordChanges(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	originalHash := user.HashedPassword

	updated, err := svc.Update(ctx, user.ID, "alice", "alice+new@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, originalHash, updated.HashedPassword, "empty password keeps the old hash")
	assert.Equal(t, "alice+new@example.com", updated.Email)

	updated, err = svc.Update(ctx, user.ID, "alice", "alice+new@example.com", "newpassword123")
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, updated.HashedPassword)

	_, err = svc.Authenticate(ctx, "alice", "newpassword123")
	assert.NoError(t, err)
}

func TestUpdate_MissingUser(t *testing.T) {
	svc := newService(t)

	_, err := svc.Update(context.Background(), uuid.New(), "ghost", "ghost@example.com", "")
	assert.True(t, store.IsNotFoundError(err))
}

func TestDelete_SecondCallReportsNotFound(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))
	err = svc.Delete(ctx, user.ID)
	assert.True(t, store.IsNotFoundError(err))
}

func TestAuthenticate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user maps to the same error", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody", "password123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestFindOwnerSubject(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	owner, err := svc.FindOwnerSubject(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", owner, "the owning subject of a user resource is its username")

	_, err = svc.FindOwnerSubject(ctx, uuid.New())
	assert.True(t, store.IsNotFoundError(err))
}
