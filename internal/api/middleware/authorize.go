package middleware

import (
	"net/http"

	"github.com/usergate/usergate/internal/api"
	"github.com/usergate/usergate/internal/api/shared"
	"github.com/usergate/usergate/internal/authz"
)

// Authorize binds an authorization rule to a route. The rule is evaluated
// against the principal placed in the context by Authenticate; a failed
// decision short-circuits with the canonical envelope for its error kind
// (401, 403, 404 or 400 per the engine's contract).
func Authorize(engine *authz.Engine, rule authz.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := shared.GetPrincipal(r.Context())
			if err := engine.Authorize(r.Context(), principal, rule, r); err != nil {
				api.HandleAPIError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
