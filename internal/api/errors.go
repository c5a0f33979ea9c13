package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/usergate/usergate/internal/api/shared"
	"github.com/usergate/usergate/internal/authz"
	"github.com/usergate/usergate/internal/domain"
	"github.com/usergate/usergate/internal/service/auth"
	"github.com/usergate/usergate/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Every rejection the services produce maps to
// exactly one row of the fixed taxonomy; unclassified errors fall through to
// 500 so no failure reaches a caller unmapped.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrMissingCredential),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, authz.ErrUnauthenticated):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, authz.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Validation errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// SafeErrorMessage returns a sanitized, user-facing message for the error.
// Internal detail never leaks: unclassified errors get a generic message and
// are logged server-side instead.
func SafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrMissingCredential),
		errors.Is(err, authz.ErrUnauthenticated):
		return "Full authentication is required to access this resource"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, authz.ErrForbidden):
		return "Access Denied"

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, domain.ErrValidation):
		// These carry messages built from structured fields, safe to expose.
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// errorDetailEntries derives the structured "errors" detail entries for
// business failures. Fragments come from the error types' fields, never from
// re-parsing formatted text.
func errorDetailEntries(err error) []string {
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		return []string{nf.Error(), fmt.Sprintf("id: %s", nf.ID)}
	}

	var ae *store.AlreadyExistsError
	if errors.As(err, &ae) {
		return []string{ae.Error(), fmt.Sprintf("%s: %s", ae.Field, ae.Value)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		entries := []string{ve.Error()}
		if ve.Value != "" {
			entries = append(entries, fmt.Sprintf("%s: %s", ve.Field, ve.Value))
		}
		return entries
	}

	return nil
}

// HandleAPIError writes the canonical error envelope for the given error.
// Business failures carry a structured details map; unexpected errors are
// logged with full detail and reported with a generic message only.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	env := shared.NewErrorEnvelope(status, SafeErrorMessage(err), r.URL.Path)

	if status == http.StatusInternalServerError {
		shared.RespondWithEnvelopeAndLog(w, r, status, env.Message, err)
		return
	}

	env = env.WithErrorDetails(errorDetailEntries(err)...)
	shared.WriteEnvelope(w, r, env)
}
