// Package main implements the entry point for the edge gateway: the service
// that enforces perimeter policy and routes requests to backends.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/usergate/usergate/internal/config"
	"github.com/usergate/usergate/internal/gateway"
	"github.com/usergate/usergate/internal/platform/logger"
	"github.com/usergate/usergate/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	appLogger.Info("gateway configuration loaded",
		"port", cfg.Server.Port,
		"routes", len(cfg.Gateway.Routes),
		"max_body_bytes", cfg.Gateway.MaxBodyBytes)

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		appLogger.Error("failed to create token service", "error", err)
		os.Exit(1)
	}

	dispatcher, err := gateway.NewDispatcher(
		cfg.Gateway.Routes,
		time.Duration(cfg.Gateway.BackendTimeoutMs)*time.Millisecond,
		appLogger,
	)
	if err != nil {
		appLogger.Error("failed to build dispatcher", "error", err)
		os.Exit(1)
	}

	router := newGatewayRouter(cfg, tokenService, dispatcher)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	runServer(srv, appLogger)
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(srv *http.Server, appLogger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("gateway listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("gateway failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		appLogger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("graceful shutdown failed", "error", err)
		}
	}
}
