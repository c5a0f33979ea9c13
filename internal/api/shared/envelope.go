package shared

import (
	"net/http"
	"time"
)

// statusLabels is the fixed status→label table shared by both services.
// Every rejection the system produces maps to exactly one row.
var statusLabels = map[int]string{
	http.StatusBadRequest:            "Bad Request",
	http.StatusUnauthorized:          "Unauthorized",
	http.StatusForbidden:             "Forbidden",
	http.StatusNotFound:              "Not Found",
	http.StatusConflict:              "Conflict",
	http.StatusRequestEntityTooLarge: "Request Entity Too Large",
	http.StatusInternalServerError:   "Internal Server Error",
	http.StatusServiceUnavailable:    "Service Unavailable",
}

// ErrorEnvelope is the canonical structured failure response shape shared by
// all services. Status and ErrorLabel are always a matched pair from the
// fixed table; Details is absent (not an empty list) when there is nothing
// to report.
type ErrorEnvelope struct {
	Timestamp  time.Time   `json:"timestamp"`
	Status     int         `json:"status"`
	ErrorLabel string      `json:"error"`
	Message    string      `json:"message"`
	Path       string      `json:"path"`
	Details    interface{} `json:"details,omitempty"`
}

// StatusLabel returns the canonical label for an HTTP status from the fixed
// table, falling back to the standard status text for statuses outside it.
func StatusLabel(status int) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return http.StatusText(status)
}

// NewErrorEnvelope builds an envelope for the given status, message and
// request path. The label is derived from the status here so callers cannot
// produce a mismatched pair.
func NewErrorEnvelope(status int, message, path string) ErrorEnvelope {
	return ErrorEnvelope{
		Timestamp:  time.Now().UTC(),
		Status:     status,
		ErrorLabel: StatusLabel(status),
		Message:    message,
		Path:       path,
	}
}

// WithDetails returns a copy of the envelope carrying an ordered list of
// detail strings. Empty lists are dropped so the field stays absent.
func (e ErrorEnvelope) WithDetails(details []string) ErrorEnvelope {
	if len(details) > 0 {
		e.Details = details
	}
	return e
}

// WithErrorDetails returns a copy of the envelope carrying a structured
// detail map keyed "errors", the shape used for business failures.
func (e ErrorEnvelope) WithErrorDetails(entries ...string) ErrorEnvelope {
	if len(entries) > 0 {
		e.Details = map[string][]string{"errors": entries}
	}
	return e
}
