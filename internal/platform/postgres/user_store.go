package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/usergate/usergate/internal/domain"
	"github.com/usergate/usergate/internal/store"
)

// Unique constraint names on the users table. Used to decide which field a
// duplicate error reports.
const (
	usernameUniqueConstraint = "users_username_key"
	emailUniqueConstraint    = "users_email_key"
)

// PostgresUserStore implements the store.UserStore interface using a
// PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresUserStore(db *sql.DB, logger *slog.Logger) *PostgresUserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, hashed_password, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.HashedPassword,
		rolesToCSV(user.Roles), user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return s.mapWriteError(err, user)
	}
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, username, email, hashed_password, roles, created_at, updated_at
		FROM users
		WHERE id = $1`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if IsNoRows(err) {
			return nil, store.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, hashed_password, roles, created_at, updated_at
		FROM users
		WHERE username = $1`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if IsNoRows(err) {
			return nil, &store.NotFoundError{Resource: "user"}
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, hashed_password = $4, roles = $5, updated_at = $6
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.HashedPassword,
		rolesToCSV(user.Roles), user.UpdatedAt)
	if err != nil {
		return s.mapWriteError(err, user)
	}
	return checkRowsAffected(result, user.ID)
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return checkRowsAffected(result, id)
}

// mapWriteError converts constraint violations into the structured store
// errors the API layer reports from.
func (s *PostgresUserStore) mapWriteError(err error, user *domain.User) error {
	switch {
	case IsUniqueViolation(err, usernameUniqueConstraint):
		return store.NewAlreadyExistsError("user", "username", user.Username)
	case IsUniqueViolation(err, emailUniqueConstraint):
		return store.NewAlreadyExistsError("user", "email", user.Email)
	case IsUniqueViolation(err, ""):
		s.logger.Warn("unique violation on unrecognized constraint", "error", err)
		return store.NewAlreadyExistsError("user", "username", user.Username)
	default:
		return fmt.Errorf("failed to write user: %w", err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *PostgresUserStore) scanUser(row rowScanner) (*domain.User, error) {
	var (
		user  domain.User
		roles string
	)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword,
		&roles, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	user.Roles = csvToRoles(roles)
	return &user, nil
}

func checkRowsAffected(result sql.Result, id uuid.UUID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.NewNotFoundError("user", id)
	}
	return nil
}
