package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/notekeeper/internal/apperror"
	"github.com/sakif/notekeeper/internal/model"
	"github.com/sakif/notekeeper/internal/repository"
)

// compile-time check that *DB implements repository.NoteRepository
var _ repository.NoteRepository = (*DB)(nil)

// CreateNote inserts a new note for its owner.
//
// ID and CreatedAt are assigned here — they are server-owned and immutable
// for the rest of the note's life. We take a pointer so the caller's struct
// comes back filled in with both.
func (db *DB) CreateNote(ctx context.Context, note *model.Note) error {
	note.ID = xid.New().String()
	note.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO notes (id, user_id, title, description, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		note.ID,
		note.UserID,
		note.Title,
		note.Description,
		note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating note: %w", err)
	}

	return nil
}

// GetNoteByID retrieves a single note, scoped to its owner.
//
// OWNERSHIP IN THE WHERE CLAUSE:
// The query filters on id AND user_id, so a note belonging to someone else
// is indistinguishable from a note that doesn't exist. One query, no
// existence leak, no separate permission check to forget.
func (db *DB) GetNoteByID(ctx context.Context, userID, id string) (*model.Note, error) {
	var n model.Note

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, title, description, created_at
		 FROM notes
		 WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Description,
		&n.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("note", id)
		}
		return nil, fmt.Errorf("sqlite: getting note %s: %w", id, err)
	}

	return &n, nil
}

// ListNotes returns all of a user's notes, newest first.
//
// No pagination: a personal note collection is small by nature, and the API
// contract promises the full list in one response (the envelope carries a
// count, not a cursor).
func (db *DB) ListNotes(ctx context.Context, userID string) ([]model.Note, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, title, description, created_at
		 FROM notes
		 WHERE user_id = ?
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing notes: %w", err)
	}
	// sql.Rows holds a pool connection until closed — leak these and the
	// pool eventually runs dry.
	defer rows.Close()

	notes := make([]model.Note, 0, 16)

	for rows.Next() {
		var n model.Note
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Description, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning note row: %w", err)
		}
		notes = append(notes, n)
	}

	// rows.Err() catches failures that happened mid-iteration (e.g. the
	// connection dropping), which the Scan calls above won't see.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating notes: %w", err)
	}

	return notes, nil
}

// UpdateNote modifies an existing note's title and description.
//
// id, user_id, and created_at are immutable — the SET clause never touches
// them. RowsAffected doubles as the existence check: zero rows changed means
// the note isn't there (or isn't this user's), so we report NotFound without
// a second query.
func (db *DB) UpdateNote(ctx context.Context, note *model.Note) error {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE notes
		 SET title = ?, description = ?
		 WHERE id = ? AND user_id = ?`,
		note.Title,
		note.Description,
		note.ID,
		note.UserID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating note %s: %w", note.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("note", note.ID)
	}

	return nil
}

// DeleteNote removes a note. Same RowsAffected pattern as UpdateNote — a
// second delete of the same id reports NotFound, never anything else.
func (db *DB) DeleteNote(ctx context.Context, userID, id string) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM notes WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting note %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("note", id)
	}

	return nil
}
