package authz

import "errors"

// Authorization decision errors.
var (
	// ErrUnauthenticated indicates a non-public rule was evaluated for an
	// unauthenticated principal.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden indicates an authenticated principal does not satisfy the
	// rule for the operation.
	ErrForbidden = errors.New("access denied")
)
