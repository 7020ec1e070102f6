// Copyright (c) 2026 Plateful. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/plateful/plateful/internal/core/category"
	"github.com/plateful/plateful/internal/core/restaurant"
	"github.com/plateful/plateful/internal/platform/config"
	"github.com/plateful/plateful/internal/platform/constants"
	"github.com/plateful/plateful/internal/platform/middleware"
	"github.com/plateful/plateful/internal/users/account"
	"github.com/plateful/plateful/internal/users/auth"
	"github.com/plateful/plateful/internal/users/social"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles signup, session login, token issuance, and logout.
	Auth *auth.Handler

	// Account handles profile reads and edits.
	Account *account.Handler

	// Social handles favorites, likes, follows, and the leaderboard.
	Social *social.Handler

	// Restaurant handles the venue catalog.
	Restaurant *restaurant.Handler

	// Category handles the cuisine/venue category lookup table.
	Category *category.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The verifiers are tried in order on every request: session cookie first,
// bearer token second. A request carrying neither proceeds anonymously and is
// stopped later by RequireAuth where a viewer is mandatory.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifiers []middleware.Verifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifiers...))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/me", h.Account.MeRoutes())

		api.Route("/users", func(users chi.Router) {
			h.Social.RegisterUserRoutes(users)
			h.Account.RegisterUserRoutes(users)
		})

		api.Route("/restaurants", func(restaurants chi.Router) {
			h.Restaurant.RegisterRoutes(restaurants)
			h.Social.RegisterRestaurantRoutes(restaurants)
		})

		api.Route("/categories", func(categories chi.Router) {
			h.Category.RegisterRoutes(categories)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
