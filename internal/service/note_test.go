package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/sakif/notekeeper/internal/apperror"
	"github.com/sakif/notekeeper/internal/model"
)

// mockNoteRepo is an in-memory stand-in for the SQLite repository.
// The service only sees the repository.NoteRepository interface, so it
// cannot tell the difference — which is exactly the point: these tests
// exercise service logic, not SQL.
type mockNoteRepo struct {
	notes  map[string]*model.Note
	nextID int
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: make(map[string]*model.Note)}
}

func (m *mockNoteRepo) CreateNote(_ context.Context, note *model.Note) error {
	m.nextID++
	note.ID = fmt.Sprintf("mock-%d", m.nextID)
	note.CreatedAt = time.Now()
	stored := *note
	m.notes[note.ID] = &stored
	return nil
}

func (m *mockNoteRepo) GetNoteByID(_ context.Context, userID, id string) (*model.Note, error) {
	note, ok := m.notes[id]
	if !ok || note.UserID != userID {
		return nil, apperror.NotFound("note", id)
	}
	result := *note
	return &result, nil
}

func (m *mockNoteRepo) ListNotes(_ context.Context, userID string) ([]model.Note, error) {
	result := make([]model.Note, 0, len(m.notes))
	for _, n := range m.notes {
		if n.UserID == userID {
			result = append(result, *n)
		}
	}
	return result, nil
}

func (m *mockNoteRepo) UpdateNote(_ context.Context, note *model.Note) error {
	existing, ok := m.notes[note.ID]
	if !ok || existing.UserID != note.UserID {
		return apperror.NotFound("note", note.ID)
	}
	stored := *note
	m.notes[note.ID] = &stored
	return nil
}

func (m *mockNoteRepo) DeleteNote(_ context.Context, userID, id string) error {
	existing, ok := m.notes[id]
	if !ok || existing.UserID != userID {
		return apperror.NotFound("note", id)
	}
	delete(m.notes, id)
	return nil
}

func newTestNoteService(t *testing.T) (*NoteService, *mockNoteRepo) {
	t.Helper()
	repo := newMockNoteRepo()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewNoteService(repo, logger), repo
}

func TestNoteCreate_Success(t *testing.T) {
	svc, _ := newTestNoteService(t)

	note, err := svc.Create(context.Background(), "user-1", "groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if note.ID == "" {
		t.Error("expected note to have a server-assigned ID")
	}
	if note.CreatedAt.IsZero() {
		t.Error("expected note to have a server-assigned timestamp")
	}
	if note.Title != "groceries" {
		t.Errorf("Title = %q, want %q", note.Title, "groceries")
	}
	if note.Description != "milk, eggs" {
		t.Errorf("Description = %q, want %q", note.Description, "milk, eggs")
	}
}

func TestNoteCreate_EmptyTitle(t *testing.T) {
	svc, _ := newTestNoteService(t)

	for _, title := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), "user-1", title, "body")
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("Create(title=%q) error = %v, want ErrValidation", title, err)
		}
	}
}

func TestNoteCreate_EmptyDescriptionIsFine(t *testing.T) {
	svc, _ := newTestNoteService(t)

	note, err := svc.Create(context.Background(), "user-1", "just a title", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if note.Description != "" {
		t.Errorf("Description = %q, want empty", note.Description)
	}
}

func TestNoteUpdate_Success(t *testing.T) {
	svc, _ := newTestNoteService(t)

	created, _ := svc.Create(context.Background(), "user-1", "draft", "v1")

	updated, err := svc.Update(context.Background(), "user-1", created.ID, "final", "v2")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "final" || updated.Description != "v2" {
		t.Errorf("after update: Title=%q Description=%q", updated.Title, updated.Description)
	}
	if updated.ID != created.ID {
		t.Error("Update() must not change the note ID")
	}
}

func TestNoteUpdate_RequiresTitle(t *testing.T) {
	svc, _ := newTestNoteService(t)

	created, _ := svc.Create(context.Background(), "user-1", "draft", "v1")

	// Update is a full replacement — an empty title is invalid, not
	// "keep the old one".
	_, err := svc.Update(context.Background(), "user-1", created.ID, "", "v2")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Update(empty title) error = %v, want ErrValidation", err)
	}
}

func TestNoteUpdate_MissingNote(t *testing.T) {
	svc, _ := newTestNoteService(t)

	_, err := svc.Update(context.Background(), "user-1", "nope", "title", "desc")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestNoteDelete_ReturnsLastKnownState(t *testing.T) {
	svc, repo := newTestNoteService(t)

	created, _ := svc.Create(context.Background(), "user-1", "ephemeral", "going away")

	deleted, err := svc.Delete(context.Background(), "user-1", created.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.Title != "ephemeral" || deleted.Description != "going away" {
		t.Errorf("Delete() returned %+v, want the pre-delete state", deleted)
	}
	if _, ok := repo.notes[created.ID]; ok {
		t.Error("note still present in repository after Delete()")
	}
}

func TestNoteDelete_SecondDeleteIsNotFound(t *testing.T) {
	svc, _ := newTestNoteService(t)

	created, _ := svc.Create(context.Background(), "user-1", "once", "")

	if _, err := svc.Delete(context.Background(), "user-1", created.ID); err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}

	_, err := svc.Delete(context.Background(), "user-1", created.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound (and nothing else)", err)
	}
}

func TestNoteList_ScopedToUser(t *testing.T) {
	svc, _ := newTestNoteService(t)

	svc.Create(context.Background(), "user-1", "mine", "")
	svc.Create(context.Background(), "user-2", "theirs", "")

	notes, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("List() returned %d notes, want 1", len(notes))
	}
	if notes[0].Title != "mine" {
		t.Errorf("List() returned %q, want %q", notes[0].Title, "mine")
	}
}
