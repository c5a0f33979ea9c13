package auth

import "errors"

// Common authentication service errors
var (
	// ErrMissingCredential indicates the Authorization header was absent or
	// not of the form "Bearer <token>".
	ErrMissingCredential = errors.New("authorization header is missing or malformed")

	// ErrInvalidToken indicates the token format is invalid, the signature
	// doesn't match, or a claim check failed.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidCredentials indicates a username/password pair did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
