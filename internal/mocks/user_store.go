package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/usergate/usergate/internal/domain"
	"github.com/usergate/usergate/internal/store"
)

// MemoryUserStore is an in-memory implementation of store.UserStore for
// testing. It enforces the same uniqueness rules as the real store.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

var _ store.UserStore = (*MemoryUserStore)(nil)

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return store.NewAlreadyExistsError("user", "username", user.Username)
		}
		if u.Email == user.Email {
			return store.NewAlreadyExistsError("user", "email", user.Email)
		}
	}

	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.NewNotFoundError("user", id)
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, &store.NotFoundError{Resource: "user"}
}

func (s *MemoryUserStore) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return store.NewNotFoundError("user", user.ID)
	}
	for id, u := range s.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username {
			return store.NewAlreadyExistsError("user", "username", user.Username)
		}
		if u.Email == user.Email {
			return store.NewAlreadyExistsError("user", "email", user.Email)
		}
	}

	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *MemoryUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return store.NewNotFoundError("user", id)
	}
	delete(s.users, id)
	return nil
}
