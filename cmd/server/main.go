// Package main is the entry point for the Snippet Vault API server.
//
// main stays minimal by design: build the logger, load configuration, create
// the server, start it. Every failure on this path is fatal — the process
// exits non-zero rather than serving requests against a partially
// initialized state. All actual logic lives in the internal packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/snippet-vault/internal/config"
	"github.com/sakif/snippet-vault/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Config comes from the environment (with optional .env). A missing
	// DB_DSN stops the process right here.
	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The store directory may not exist on first run.
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath()), 0755); err != nil {
		logger.Error("failed to create database directory",
			slog.String("path", cfg.DatabasePath()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// server.New opens and pings the snippet store; an unreachable store is
	// a startup failure, not something to limp along without.
	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until SIGINT/SIGTERM.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
