// Package sqlite implements the repository interfaces using SQLite as the
// storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database — a single file living inside the process.
// No separate database server to install, configure, or babysit, which is
// exactly right for a single-binary note service. Tests get an extra perk:
// ":memory:" gives every test its own throwaway database.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which drags in a C toolchain and makes
// cross-compilation painful. modernc.org/sqlite is a pure-Go translation of
// the SQLite sources — it builds anywhere Go builds.
package sqlite

import (
	"database/sql"
	"fmt"

	// Blank import: the driver registers itself with database/sql under the
	// name "sqlite" in its init(). We never reference the package directly.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and implements the repository
// interfaces. Wrapping (rather than using sql.DB bare) gives us a place to
// hang the repository methods and to control the open/migrate/close
// lifecycle.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
//
// dbPath examples:
//   - "data/notekeeper.db" → file-based, persistent
//   - ":memory:"           → in-memory, discarded on close (tests)
//
// sql.Open does not actually connect — it only builds a pool manager — so
// we Ping immediately to surface bad paths and permission problems here
// rather than on the first query.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// One connection, not a pool. SQLite allows a single writer anyway, and
	// the PRAGMAs below are per-connection — with a pool, some connections
	// would silently miss them. This also keeps ":memory:" working: every
	// new connection to ":memory:" is a brand-new empty database.
	conn.SetMaxOpenConns(1)

	// WAL mode lets reads proceed concurrently with a write. The default
	// rollback journal locks the whole file for every write, which shows up
	// fast under a web server's concurrent requests.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are off by default in SQLite (historical baggage).
	// We rely on notes.user_id → users.id integrity, so turn them on.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool. Always defer this next to New —
// it flushes the WAL and releases the file lock.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps it idempotent,
// which is all a two-table schema needs; a migration tracker would be
// overkill here.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			phone         TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	// email is UNIQUE — one account per address. The INSERT surfaces a
	// constraint violation that user.go translates to a Conflict error.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS notes (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL REFERENCES users(id),
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_notes_user_id ON notes(user_id);
		CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating notes table: %w", err)
	}

	return nil
}
