// Package repository defines the storage interface the rest of the
// application programs against. Concrete implementations (see the sqlite
// subpackage) are injected at wire-up time, so the service layer never
// imports a database driver.
package repository

import (
	"context"

	"github.com/sakif/snippet-vault/internal/model"
)

// SnippetRepository is the sole boundary between the application and the
// snippet store. It owns the translation to and from the store's native
// identifier format — callers only ever see opaque id strings.
//
// Error contract (see internal/apperror):
//   - Insert fails only with ErrUnavailable
//   - ListAll fails only with ErrUnavailable
//   - Delete fails with ErrInvalidID (unparseable id), ErrNotFound
//     (well-formed id, no matching record), or ErrUnavailable
type SnippetRepository interface {
	Insert(ctx context.Context, snippet *model.Snippet) error
	ListAll(ctx context.Context) ([]model.Snippet, error)
	Delete(ctx context.Context, id string) error
}
