package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/notekeeper/internal/apperror"
	"github.com/sakif/notekeeper/internal/model"
	"github.com/sakif/notekeeper/internal/repository"
)

// MaxTitleLength bounds note titles. Descriptions are unbounded short text;
// titles render in list views, so they get a ceiling.
const MaxTitleLength = 200

// NoteService handles the business logic for a user's note collection.
// Every method takes the owning userID explicitly — there is no ambient
// "current user"; identity flows in from the caller on every call.
type NoteService struct {
	repo   repository.NoteRepository
	logger *slog.Logger
}

// NewNoteService creates a NoteService. The repository is an interface, so
// tests inject an in-memory fake and production injects *sqlite.DB.
func NewNoteService(repo repository.NoteRepository, logger *slog.Logger) *NoteService {
	return &NoteService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and saves a new note. Title is required; description may
// be empty. The repository assigns ID and CreatedAt.
func (s *NoteService) Create(ctx context.Context, userID, title, description string) (*model.Note, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or less", MaxTitleLength))
	}

	note := &model.Note{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
	}

	if err := s.repo.CreateNote(ctx, note); err != nil {
		s.logger.Error("failed to create note",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating note: %w", err)
	}

	s.logger.Info("note created",
		slog.String("id", note.ID),
		slog.String("userID", userID),
	)

	return note, nil
}

// List returns all of the user's notes in the repository's order (newest
// first).
func (s *NoteService) List(ctx context.Context, userID string) ([]model.Note, error) {
	notes, err := s.repo.ListNotes(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list notes",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	return notes, nil
}

// Update replaces a note's title and description.
//
// Unlike Create, BOTH fields are required here: the API contract says an
// update always carries the full new title/description pair, so an empty
// title is a validation error, not a "keep the old value" signal.
func (s *NoteService) Update(ctx context.Context, userID, id, title, description string) (*model.Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "note ID is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or less", MaxTitleLength))
	}

	// Fetch-then-update: confirms existence (NotFound propagates from here)
	// and gives us the full record to return after the write.
	note, err := s.repo.GetNoteByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Description = strings.TrimSpace(description)

	if err := s.repo.UpdateNote(ctx, note); err != nil {
		s.logger.Error("failed to update note",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating note: %w", err)
	}

	s.logger.Info("note updated", slog.String("id", id))

	return note, nil
}

// Delete removes a note and returns its last-known representation — the
// state it had immediately before deletion. Deleting an already-deleted id
// reports NotFound.
func (s *NoteService) Delete(ctx context.Context, userID, id string) (*model.Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "note ID is required")
	}

	// Read before delete so the response can carry the final state.
	note, err := s.repo.GetNoteByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteNote(ctx, userID, id); err != nil {
		return nil, err
	}

	s.logger.Info("note deleted", slog.String("id", id))

	return note, nil
}
