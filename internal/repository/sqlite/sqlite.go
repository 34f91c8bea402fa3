// Package sqlite implements the snippet repository on top of SQLite.
//
// WHY SQLITE?
// SQLite is an embedded database — it lives inside the Go binary as a single
// file, so the snippet store needs no separate server process. We use
// modernc.org/sqlite rather than mattn/go-sqlite3 because it is a pure Go
// translation of SQLite: no CGo, no C compiler, painless cross-compilation.
//
// The rest of the application talks to this package only through the
// repository.SnippetRepository interface, so swapping the store out later
// means changing one line in internal/server.
package sqlite

import (
	"database/sql"
	"fmt"

	// Blank import: the driver registers itself with database/sql under the
	// name "sqlite" in its init(). We never reference its symbols directly.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and implements the snippet repository.
// The pool is created once at startup, shared read-only by every request
// handler, and closed only during server shutdown — no handler ever closes
// or reassigns it while requests may be in flight.
type DB struct {
	conn *sql.DB
}

// New opens the snippet database at dbPath and prepares the schema.
//
// dbPath examples:
//   - "data/codesnippetdb.db" → file-based, persistent
//   - ":memory:"              → in-memory, gone on close (used by tests)
//
// sql.Open does not actually connect — it only creates a pool manager — so we
// Ping immediately to surface a bad path or permissions problem at startup
// rather than on the first query. A failure here is fatal for the process:
// the server must refuse to start against an unreachable store.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL mode lets reads proceed while a write is in progress. The default
	// journal mode locks the whole database during writes, which stalls
	// concurrent list requests.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.createSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: creating schema: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Callers defer this right after New so the
// WAL is flushed and the file lock released even on a panic.
func (db *DB) Close() error {
	return db.conn.Close()
}

// createSchema creates the snippets table if it does not exist yet.
// The schema is a single static table, so CREATE TABLE IF NOT EXISTS is all
// the migration machinery this service needs.
func (db *DB) createSchema() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS snippets (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			language   TEXT NOT NULL,
			code       TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_snippets_created_at ON snippets(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating snippets table: %w", err)
	}
	return nil
}
