package gateway_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usergate/usergate/internal/api/shared"
	"github.com/usergate/usergate/internal/gateway"
	"github.com/usergate/usergate/internal/mocks"
	"github.com/usergate/usergate/internal/service/auth"
)

// okHandler records whether the filter chain let the request through.
type okHandler struct {
	called bool
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.called = true
	w.WriteHeader(http.StatusOK)
}

func envelopeFrom(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorEnvelope {
	t.Helper()
	var env shared.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestContentTypeFilter(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantPass    bool
	}{
		{
			name:        "json body passes",
			contentType: "application/json",
			body:        `{"a":1}`,
			wantPass:    true,
		},
		{
			name:        "json with charset passes",
			contentType: "application/json; charset=utf-8",
			body:        `{"a":1}`,
			wantPass:    true,
		},
		{
			name:        "bodyless request passes without content type",
			contentType: "",
			body:        "",
			wantPass:    true,
		},
		{
			name:        "xml body rejected",
			contentType: "application/xml",
			body:        "<a/>",
			wantPass:    false,
		},
		{
			name:        "form body rejected",
			contentType: "application/x-www-form-urlencoded",
			body:        "a=1",
			wantPass:    false,
		},
		{
			name:        "body without content type rejected",
			contentType: "",
			body:        `{"a":1}`,
			wantPass:    false,
		},
		{
			name:        "garbage content type rejected",
			contentType: ";;;",
			body:        `{"a":1}`,
			wantPass:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &okHandler{}
			handler := gateway.ContentTypeFilter(next)

			req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if tt.wantPass {
				assert.True(t, next.called)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}

			assert.False(t, next.called, "rejected requests never reach a backend")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := envelopeFrom(t, rec)
			assert.Equal(t, "Bad Request", env.ErrorLabel)
			assert.Equal(t, "Invalid content type", env.Message)
			assert.Equal(t, "/api/users", env.Path)
		})
	}
}

func TestSizeFilter(t *testing.T) {
	const limit = 1024

	t.Run("under the limit passes", func(t *testing.T) {
		next := &okHandler{}
		handler := gateway.SizeFilter(limit)(next)

		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"a":1}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, next.called)
	})

	t.Run("exactly the limit passes", func(t *testing.T) {
		next := &okHandler{}
		handler := gateway.SizeFilter(limit)(next)

		req := httptest.NewRequest(http.MethodPost, "/api/users",
			strings.NewReader(strings.Repeat("x", limit)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, next.called)
	})

	t.Run("over the limit rejected", func(t *testing.T) {
		next := &okHandler{}
		handler := gateway.SizeFilter(limit)(next)

		req := httptest.NewRequest(http.MethodPost, "/api/users",
			strings.NewReader(strings.Repeat("x", limit+1)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.False(t, next.called)
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		env := envelopeFrom(t, rec)
		assert.Equal(t, "Request Entity Too Large", env.ErrorLabel)
		assert.Equal(t, "Request size exceeds limit", env.Message)
	})
}

func TestAuthFilter(t *testing.T) {
	isPublic := func(r *http.Request) bool {
		return r.Method == http.MethodPost && r.URL.Path == "/api/users"
	}

	t.Run("public route skips verification", func(t *testing.T) {
		tokens := &mocks.MockTokenService{VerifyErr: auth.ErrMissingCredential}
		next := &okHandler{}
		handler := gateway.AuthFilter(tokens, isPublic)(next)

		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, next.called)
		assert.Equal(t, 0, tokens.VerifyCalls)
	})

	t.Run("missing credential rejected", func(t *testing.T) {
		tokens := &mocks.MockTokenService{VerifyErr: auth.ErrMissingCredential}
		next := &okHandler{}
		handler := gateway.AuthFilter(tokens, isPublic)(next)

		req := httptest.NewRequest(http.MethodGet, "/api/users/123", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.False(t, next.called)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := envelopeFrom(t, rec)
		assert.Equal(t, "Unauthorized", env.ErrorLabel)
		assert.Equal(t, "Full authentication is required to access this resource", env.Message)
		assert.Equal(t, "/api/users/123", env.Path)
	})

	t.Run("expired credential rejected", func(t *testing.T) {
		tokens := &mocks.MockTokenService{VerifyErr: auth.ErrExpiredToken}
		next := &okHandler{}
		handler := gateway.AuthFilter(tokens, isPublic)(next)

		req := httptest.NewRequest(http.MethodGet, "/api/users/123", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token expired", envelopeFrom(t, rec).Message)
	})

	t.Run("verified principal flows to the next handler", func(t *testing.T) {
		tokens := &mocks.MockTokenService{Principal: auth.NewPrincipal("alice", []string{"USER"})}

		var subject string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject = shared.GetPrincipal(r.Context()).Subject
		})
		handler := gateway.AuthFilter(tokens, isPublic)(next)

		req := httptest.NewRequest(http.MethodGet, "/api/users/123", nil)
		req.Header.Set("Authorization", "Bearer something")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "alice", subject)
	})
}

// The filters compose in perimeter order: the first failing filter decides
// the response.
func TestFilterChain_FirstFailureWins(t *testing.T) {
	tokens := &mocks.MockTokenService{VerifyErr: auth.ErrMissingCredential}
	next := &okHandler{}

	var handler http.Handler = next
	handler = gateway.AuthFilter(tokens, func(*http.Request) bool { return false })(handler)
	handler = gateway.SizeFilter(8)(handler)
	handler = gateway.ContentTypeFilter(handler)

	// Wrong content type AND oversized AND unauthenticated: content type wins.
	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(strings.Repeat("x", 64)))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid content type", envelopeFrom(t, rec).Message)
	assert.Equal(t, 0, tokens.VerifyCalls)
	assert.False(t, next.called)

	// Valid content type but oversized: size wins before auth runs.
	req = httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(strings.Repeat("x", 64)))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, 0, tokens.VerifyCalls)
}
