// Package service contains the business-logic collaborators that sit between
// the HTTP handlers and the stores.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/usergate/usergate/internal/authz"
	"github.com/usergate/usergate/internal/domain"
	"github.com/usergate/usergate/internal/service/auth"
	"github.com/usergate/usergate/internal/store"
)

// UserService owns the user resource lifecycle: password hashing, persistence
// and credential checks. It also resolves resource ownership for the
// authorization engine.
type UserService struct {
	users  store.UserStore
	hasher *auth.BcryptHasher
	logger *slog.Logger
}

// NewUserService creates a UserService backed by the given store.
// If logger is nil, the process default logger is used.
func NewUserService(users store.UserStore, hasher *auth.BcryptHasher, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		users:  users,
		hasher: hasher,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

// Create hashes the password and persists a new user with the USER role.
// Returns an AlreadyExistsError when the username or email is taken.
func (s *UserService) Create(ctx context.Context, username, email, password string) (*domain.User, error) {
	user := domain.NewUser(username, email, password)

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// GetByID retrieves a user. Returns a NotFoundError when the user does not
// exist.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update replaces the user's username and email, and rehashes the password
// when a new one is supplied.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, username, email, password string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.Email = email
	if password != "" {
		hashed, err := s.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashed
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

// Delete removes a user. Returns a NotFoundError when the user does not
// exist, so repeating a delete surfaces 404 rather than succeeding again.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// Authenticate checks a username/password pair. A missing user and a wrong
// password both map to ErrInvalidCredentials so callers cannot probe for
// which usernames exist.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return user, nil
}

// FindOwnerSubject implements authz.OwnerResolver: the owning subject of a
// user resource is the account's username.
func (s *UserService) FindOwnerSubject(ctx context.Context, resourceID uuid.UUID) (string, error) {
	user, err := s.users.GetByID(ctx, resourceID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// Ensure UserService can serve as the engine's ownership collaborator.
var _ authz.OwnerResolver = (*UserService)(nil)
