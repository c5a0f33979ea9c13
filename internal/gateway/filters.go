package gateway

import (
	"mime"
	"net/http"

	"github.com/usergate/usergate/internal/api"
	"github.com/usergate/usergate/internal/api/shared"
	"github.com/usergate/usergate/internal/service/auth"
)

// The perimeter filters run in a fixed order ahead of routing:
// content type, then size, then authentication. Each filter either passes the
// request along or terminates the chain with the canonical envelope; the
// first failure decides the response.

// ContentTypeFilter rejects any request carrying a body whose declared
// content type is absent or not JSON.
func ContentTypeFilter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasBody(r) {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				shared.RespondWithEnvelope(w, r, http.StatusBadRequest, "Invalid content type")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// SizeFilter rejects requests whose declared content length exceeds the
// configured ceiling.
func SizeFilter(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				shared.RespondWithEnvelope(w, r, http.StatusRequestEntityTooLarge,
					"Request size exceeds limit")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AuthFilter rejects requests to non-public paths that carry no valid bearer
// credential, and attaches the verified principal to the request context for
// the rest of the chain. The backend re-derives the principal itself; this
// filter only stops unauthenticated traffic at the edge.
func AuthFilter(verifier auth.TokenVerifier, isPublic func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := verifier.VerifyHeader(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				api.HandleAPIError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(shared.WithPrincipal(r.Context(), principal)))
		})
	}
}

// hasBody reports whether the request declares a body. A chunked request
// reports -1 and counts as having a body.
func hasBody(r *http.Request) bool {
	return r.ContentLength != 0
}
