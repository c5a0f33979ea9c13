package gateway_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usergate/usergate/internal/gateway"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "user-service", want: "User Service"},
		{in: "order-history-service", want: "Order History Service"},
		{in: "billing", want: "Billing"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, gateway.DisplayName(tt.in))
		})
	}
}

func TestFallbackHandler(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/fallback/{service}", gateway.FallbackHandler)

	req := httptest.NewRequest(http.MethodGet, "/fallback/user-service", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := envelopeFrom(t, rec)
	assert.Equal(t, http.StatusServiceUnavailable, env.Status)
	assert.Equal(t, "Service Unavailable", env.ErrorLabel)
	assert.Equal(t, "User Service is temporarily unavailable", env.Message)
	assert.Equal(t, "/fallback/user-service", env.Path)

	details, ok := env.Details.([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Service is not responding. Please try again later."}, details)
}

// Serving the fallback twice produces the same response both times: no retry
// state, no circuit accounting.
func TestWriteFallback_Idempotent(t *testing.T) {
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
		rec := httptest.NewRecorder()
		gateway.WriteFallback(rec, req, "user-service")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		env := envelopeFrom(t, rec)
		assert.Equal(t, "User Service is temporarily unavailable", env.Message)
		assert.Equal(t, "/api/users/42", env.Path)
	}
}
