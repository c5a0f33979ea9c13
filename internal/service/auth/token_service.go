package auth

import "context"

// TokenVerifier verifies a raw Authorization header value and produces the
// authenticated principal it encodes.
type TokenVerifier interface {
	// VerifyHeader validates an Authorization header of the form
	// "Bearer <token>". It returns ErrMissingCredential when the header is
	// absent or malformed, ErrExpiredToken when the token has expired, and
	// ErrInvalidToken for every other verification failure. A raw decoding
	// error is never surfaced to callers.
	VerifyHeader(ctx context.Context, rawHeader string) (*Principal, error)
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	TokenVerifier

	// Generate creates a signed token for the given subject carrying the
	// given roles in the `authorities` claim.
	Generate(ctx context.Context, subject string, roles []string) (string, error)
}
