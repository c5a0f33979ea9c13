package middleware

import (
	"net/http"

	"github.com/usergate/usergate/internal/api"
	"github.com/usergate/usergate/internal/api/shared"
	"github.com/usergate/usergate/internal/service/auth"
)

// AuthMiddleware provides bearer-token authentication for routes. The
// backend never trusts gateway state: the principal is re-derived from the
// credential on every request.
type AuthMiddleware struct {
	verifier auth.TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given verifier.
func NewAuthMiddleware(verifier auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the Authorization header and attaches the resulting
// principal to the request context. Requests without a valid credential are
// rejected with the canonical 401 envelope.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.verifier.VerifyHeader(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			api.HandleAPIError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithPrincipal(r.Context(), principal)))
	})
}
