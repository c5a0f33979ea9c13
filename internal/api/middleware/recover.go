package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/usergate/usergate/internal/api/shared"
)

// Recoverer is the single top-level boundary for unclassified failures. A
// panicking handler is logged with full detail server-side and reported to
// the caller with the generic 500 envelope only.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("panic recovered in request handler",
					slog.Any("panic", rec),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method),
					slog.String("trace_id", shared.GetTraceID(r.Context())),
					slog.String("stack", string(debug.Stack())))
				shared.RespondWithEnvelope(w, r, http.StatusInternalServerError,
					"An unexpected error occurred")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
