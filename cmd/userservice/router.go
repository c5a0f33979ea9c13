package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/usergate/usergate/internal/api"
	apimw "github.com/usergate/usergate/internal/api/middleware"
	"github.com/usergate/usergate/internal/authz"
	"github.com/usergate/usergate/internal/domain"
	"github.com/usergate/usergate/internal/service"
	"github.com/usergate/usergate/internal/service/auth"
)

// newRouter configures the user service routes. Every operation carries
// exactly one authorization rule; protected routes state theirs explicitly
// and the zero rule already means "authenticated", so nothing can default
// to public access.
func newRouter(
	userService *service.UserService,
	tokenService auth.TokenService,
	engine *authz.Engine,
	appLogger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimw.TraceMiddleware)
	r.Use(apimw.Recoverer)

	userHandler := api.NewUserHandler(userService, appLogger)
	authHandler := api.NewAuthHandler(userService, tokenService, appLogger)
	authMw := apimw.NewAuthMiddleware(tokenService)

	ownerRule := authz.RequireRoleOrOwner(domain.RoleAdmin, authz.PathIDExtractor("id"))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", authHandler.Login)
		r.Post("/users", userHandler.CreateUser)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)

			r.With(apimw.Authorize(engine, authz.RequireAuthenticated())).
				Get("/users/{id}", userHandler.GetUser)
			r.With(apimw.Authorize(engine, ownerRule)).
				Put("/users/{id}", userHandler.UpdateUser)
			r.With(apimw.Authorize(engine, ownerRule)).
				Delete("/users/{id}", userHandler.DeleteUser)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			appLogger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
