package gateway

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/usergate/usergate/internal/api/shared"
)

// recoveryHint is the fixed human-readable line carried by every fallback
// response.
const recoveryHint = "Service is not responding. Please try again later."

// FallbackHandler serves GET /fallback/{service}: the canned 503 envelope
// naming the service. The dispatcher produces the same response internally
// when a backend is unreachable; this endpoint is not meant for direct
// external use.
func FallbackHandler(w http.ResponseWriter, r *http.Request) {
	WriteFallback(w, r, chi.URLParam(r, "service"))
}

// WriteFallback writes the canned 503 envelope for an unreachable backend.
// Idempotent and side-effect-free apart from a warning log: no retry, no
// circuit-breaker accounting. The envelope path is the requested path.
func WriteFallback(w http.ResponseWriter, r *http.Request, service string) {
	slog.Warn("fallback triggered", "service", service, "path", r.URL.Path)

	env := shared.NewErrorEnvelope(
		http.StatusServiceUnavailable,
		DisplayName(service)+" is temporarily unavailable",
		r.URL.Path,
	).WithDetails([]string{recoveryHint})

	shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, env)
}

// DisplayName renders a backend identifier like "user-service" as the human
// form "User Service" used in fallback messages.
func DisplayName(service string) string {
	parts := strings.Split(service, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
