// Package server wires the application together: router, middleware, routes,
// and the HTTP server lifecycle.
//
// This is the composition root. All dependencies are constructed here in one
// chain — sqlite.DB → SnippetService → SnippetHandler — and each layer only
// receives what it needs: the service gets the repository interface (not the
// concrete sqlite type), the handler gets the service (not the repository).
// main.go stays minimal: read config, call New, call Start.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sakif/snippet-vault/internal/config"
	"github.com/sakif/snippet-vault/internal/handler"
	"github.com/sakif/snippet-vault/internal/middleware"
	sqliteRepo "github.com/sakif/snippet-vault/internal/repository/sqlite"
	"github.com/sakif/snippet-vault/internal/service"
)

// Server owns the router and the snippet store handle. The store is opened
// exactly once in New, shared by every request, and closed only during
// shutdown — no handler closes or replaces it while requests are in flight.
type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New constructs the full dependency chain. Opening the store happens first
// and includes a ping, so an unreachable database fails construction — the
// process exits instead of serving requests against a store it never had.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening snippet store: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures middleware and route handlers.
//
// Middleware runs in registration order:
//  1. RequestID — tags each request for tracing
//  2. RealIP — resolves the client IP behind proxies
//  3. Recoverer — a panicking handler becomes a 500, not a dead process
//  4. CORS — the browser client is served from a different origin
//  5. request logging via slog
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(middleware.Logger(s.logger))

	snippetService := service.NewSnippetService(s.db, s.logger)
	snippetHandler := handler.NewSnippetHandler(snippetService, s.logger)

	s.router.Get("/", handler.HandleIndex)
	s.router.Get("/health", handler.HandleHealth)
	s.router.Get("/snippets", snippetHandler.HandleList)
	s.router.Post("/snippets", snippetHandler.HandleCreate)
	s.router.Delete("/snippets/{id}", snippetHandler.HandleDelete)
}

// Handler exposes the router, mainly so tests can drive the server through
// httptest without binding a port.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests up to 30
// seconds, and finally close the store so the WAL is flushed.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DatabasePath()),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
