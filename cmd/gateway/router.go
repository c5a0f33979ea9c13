package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	apimw "github.com/usergate/usergate/internal/api/middleware"
	"github.com/usergate/usergate/internal/config"
	"github.com/usergate/usergate/internal/gateway"
	"github.com/usergate/usergate/internal/service/auth"
)

// securityHeaders sets the standard browser hardening headers on every
// response leaving the edge.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// isPublicRoute reports whether a request may pass the perimeter without
// credentials. Registration and login have to be reachable before the
// caller holds a token.
func isPublicRoute(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}
	switch r.URL.Path {
	case "/api/users", "/api/auth/login":
		return true
	}
	return false
}

func newGatewayRouter(cfg *config.Config, verifier auth.TokenVerifier, dispatcher *gateway.Dispatcher) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimw.TraceMiddleware)
	r.Use(apimw.Recoverer)
	r.Use(securityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/fallback/{service}", gateway.FallbackHandler)

	// Perimeter filters wrap the dispatcher: content type, then body size,
	// then credentials. Requests only reach a backend once all three pass.
	var proxy http.Handler = dispatcher
	proxy = gateway.AuthFilter(verifier, isPublicRoute)(proxy)
	proxy = gateway.SizeFilter(cfg.Gateway.MaxBodyBytes)(proxy)
	proxy = gateway.ContentTypeFilter(proxy)

	r.Handle("/api/*", proxy)

	return r
}
