package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role names recognized across both services.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents a registered user account.
// It contains essential account information and authentication details.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used transiently during create/update
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	Roles          []string  `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, email and password.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. New users are granted the USER role.
//
// NOTE: The caller is responsible for hashing the password before storing
// the user; see service.UserService.
func NewUser(username, email, password string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password,
		Roles:     []string{RoleUser},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
