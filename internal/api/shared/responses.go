package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithEnvelope writes the canonical error envelope for the given
// status and message, using the request path. It also logs the rejection with
// the trace ID for correlation.
func RespondWithEnvelope(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteEnvelope(w, r, NewErrorEnvelope(status, message, r.URL.Path))
}

// WriteEnvelope writes a prepared error envelope as the response.
func WriteEnvelope(w http.ResponseWriter, r *http.Request, env ErrorEnvelope) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if env.Status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "error response",
		slog.Int("status", env.Status),
		slog.String("error", env.ErrorLabel),
		slog.String("message", env.Message),
		slog.String("path", env.Path),
		slog.String("trace_id", traceID),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, env.Status, env)
}

// RespondWithEnvelopeAndLog writes an envelope carrying only the safe user
// message while logging the underlying error server-side. Use for unexpected
// failures where the raw error must never reach the caller.
func RespondWithEnvelopeAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	if err != nil {
		logLevel := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			logLevel = slog.LevelError
		}
		slog.LogAttrs(r.Context(), logLevel, "request failed",
			slog.Int("status", status),
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method),
			slog.String("trace_id", GetTraceID(r.Context())),
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}
	RespondWithEnvelope(w, r, status, userMessage)
}
