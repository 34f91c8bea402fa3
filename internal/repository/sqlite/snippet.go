package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/snippet-vault/internal/apperror"
	"github.com/sakif/snippet-vault/internal/model"
	"github.com/sakif/snippet-vault/internal/repository"
)

// Compile-time check that *DB satisfies the repository interface. If a method
// is missing or has the wrong signature, the build fails here instead of at
// some distant call site.
var _ repository.SnippetRepository = (*DB)(nil)

// Insert stores a new snippet.
//
// ID GENERATION WITH xid:
// xid produces 20-character, URL-safe, creation-time-sortable ids
// (e.g. "cv37rs3pp9olc6atsptg"). The id is assigned HERE, in the storage
// layer, exactly once — no other component generates or interprets ids, and
// the API never accepts a client-supplied id for creation.
//
// Insert takes a pointer so the caller's snippet carries the assigned ID and
// CreatedAt after the call returns.
func (db *DB) Insert(ctx context.Context, snippet *model.Snippet) error {
	snippet.ID = xid.New().String()
	snippet.CreatedAt = time.Now().UTC()

	// Parameterized query — the driver escapes every value, so snippet code
	// containing quotes, semicolons or anything else is stored verbatim
	// without ever being interpreted as SQL.
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO snippets (id, title, language, code, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		snippet.ID,
		snippet.Title,
		snippet.Language,
		snippet.Code,
		snippet.CreatedAt,
	)
	if err != nil {
		// An insert of a fresh row has no domain failure mode; any error
		// from the driver means the store itself is in trouble.
		return apperror.Unavailable(fmt.Errorf("inserting snippet: %w", err))
	}

	return nil
}

// ListAll returns every stored snippet, newest first. No filtering and no
// pagination — search, sort and filter are the consumer's job.
//
// The result is never nil: an empty store yields an empty slice, which
// encodes to JSON as [] rather than null.
func (db *DB) ListAll(ctx context.Context) ([]model.Snippet, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, language, code, created_at
		 FROM snippets
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("listing snippets: %w", err))
	}
	// rows holds a pool connection until closed. Leaking these eventually
	// exhausts the pool and hangs every request.
	defer rows.Close()

	snippets := make([]model.Snippet, 0, 16)
	for rows.Next() {
		var s model.Snippet
		if err := rows.Scan(&s.ID, &s.Title, &s.Language, &s.Code, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning snippet row: %w", err)
		}
		snippets = append(snippets, s)
	}
	// rows.Err catches failures that happened during iteration, which the
	// Scan calls above would not have seen.
	if err := rows.Err(); err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("iterating snippets: %w", err))
	}

	return snippets, nil
}

// Delete removes the snippet with the given id.
//
// The id must first parse as an xid — that is the store's native key format.
// A parse failure is apperror.ErrInvalidID (the request was malformed; the
// store is never touched), which is distinct from apperror.ErrNotFound (the
// id is well-formed but matches nothing, a legitimate "already gone" state).
// Conflating the two would make a bad request indistinguishable from a stale
// reference.
func (db *DB) Delete(ctx context.Context, id string) error {
	if _, err := xid.FromString(id); err != nil {
		return apperror.InvalidID(id)
	}

	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM snippets WHERE id = ?`,
		id,
	)
	if err != nil {
		return apperror.Unavailable(fmt.Errorf("deleting snippet %s: %w", id, err))
	}

	// RowsAffected tells us whether the WHERE clause matched anything.
	// Zero rows affected means the snippet was never there or is already
	// gone — either way, NotFound. Two concurrent deletes of the same id
	// therefore resolve cleanly: exactly one succeeds, the other sees
	// NotFound, with no coordination needed beyond this single statement.
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("snippet", id)
	}

	return nil
}
