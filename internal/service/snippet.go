// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → validates, enforces rules, orchestrates
//	Repository (data layer)  → reads/writes the snippet store
//
// The service accepts plain Go values, never *http.Request, and returns
// domain errors from internal/apperror, never HTTP status codes. The handler
// translates in both directions. The service also never imports a database
// driver — it holds the repository.SnippetRepository interface, so tests
// inject an in-memory mock (see snippet_test.go) and production injects the
// sqlite implementation.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/snippet-vault/internal/apperror"
	"github.com/sakif/snippet-vault/internal/model"
	"github.com/sakif/snippet-vault/internal/repository"
)

// Validation limits. Titles and language tags are short labels; code bodies
// get room for real files without letting one request swallow the store.
const (
	MaxTitleLength    = 200
	MaxLanguageLength = 50
	MaxCodeLength     = 100000 // ~100KB
)

// SnippetService handles business logic for snippets.
type SnippetService struct {
	repo   repository.SnippetRepository
	logger *slog.Logger
}

// NewSnippetService creates a new SnippetService. The caller decides which
// repository implementation to inject — sqlite in production, a mock in tests.
func NewSnippetService(repo repository.SnippetRepository, logger *slog.Logger) *SnippetService {
	return &SnippetService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and stores a new snippet, returning it with the
// storage-assigned id and creation timestamp filled in.
//
// Title and language are stored trimmed. Code must be non-empty after
// trimming but is stored VERBATIM — leading/trailing whitespace and newlines
// are part of a code snippet, so we validate on the trimmed form and keep the
// original.
//
// Validation failures never reach the repository; the store is untouched
// whenever an error is returned.
func (s *SnippetService) Create(ctx context.Context, title, language, code string) (*model.Snippet, error) {
	title = strings.TrimSpace(title)
	language = strings.TrimSpace(language)

	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or less", MaxTitleLength))
	}
	if language == "" {
		return nil, apperror.ValidationFailed("language", "language is required")
	}
	if len(language) > MaxLanguageLength {
		return nil, apperror.ValidationFailed("language",
			fmt.Sprintf("language must be %d characters or less", MaxLanguageLength))
	}
	if strings.TrimSpace(code) == "" {
		return nil, apperror.ValidationFailed("code", "code is required")
	}
	if len(code) > MaxCodeLength {
		return nil, apperror.ValidationFailed("code",
			fmt.Sprintf("code must be %d characters or less", MaxCodeLength))
	}

	snippet := &model.Snippet{
		Title:    title,
		Language: language,
		Code:     code,
	}

	// The repository assigns ID and CreatedAt during Insert.
	if err := s.repo.Insert(ctx, snippet); err != nil {
		s.logger.Error("failed to create snippet",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating snippet: %w", err)
	}

	s.logger.Info("snippet created",
		slog.String("id", snippet.ID),
		slog.String("title", snippet.Title),
		slog.String("language", snippet.Language),
	)

	return snippet, nil
}

// List returns every stored snippet. No filtering, no pagination — the
// consumer does its own searching and sorting client-side.
func (s *SnippetService) List(ctx context.Context) ([]model.Snippet, error) {
	snippets, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list snippets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing snippets: %w", err)
	}
	return snippets, nil
}

// Delete removes the snippet with the given id. The repository distinguishes
// a malformed id (ErrInvalidID) from a well-formed id with no match
// (ErrNotFound); both propagate untouched so the handler can map them to 400
// and 404 respectively. Neither is logged as a fault — a stale delete is a
// normal client state, not a server problem.
func (s *SnippetService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "snippet id is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("snippet deleted", slog.String("id", id))
	return nil
}
