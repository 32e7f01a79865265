package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/notekeeper/internal/apperror"
	"github.com/sakif/notekeeper/internal/auth"
	"github.com/sakif/notekeeper/internal/service"
)

// NoteHandler exposes the note CRUD endpoints. All of them sit behind
// auth.Middleware, so by the time a request lands here the userID is in the
// context and everything is scoped to that user.
//
//	GET    /note/notes      → list the user's notes
//	POST   /note/notes      → create a note
//	PUT    /note/notes/{id} → replace a note's title/description
//	DELETE /note/notes/{id} → delete, returning the note's final state
type NoteHandler struct {
	notes  *service.NoteService
	logger *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(notes *service.NoteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, logger: logger}
}

// noteRequest is the body for both create and update: a title and an
// optional description. Which fields are required is the service's call.
type noteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HandleList returns all of the user's notes, newest first.
//
// HTTP: GET /note/notes
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	notes, err := h.notes.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, len(notes), notes)
}

// HandleCreate saves a new note.
//
// HTTP: POST /note/notes
// BODY: {"title": "...", "description": "..."}
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid note JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	note, err := h.notes.Create(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, "Note created successfully", note)
}

// HandleUpdate replaces a note's title and description.
//
// HTTP: PUT /note/notes/{id}
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, apperror.ValidationFailed("id", "note ID is required"))
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid note JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	note, err := h.notes.Update(r.Context(), userID, id, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, "Note updated successfully", note)
}

// HandleDelete removes a note and echoes back its last-known state, so a
// client can offer undo-style flows without having cached the note itself.
//
// HTTP: DELETE /note/notes/{id}
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, apperror.ValidationFailed("id", "note ID is required"))
		return
	}

	note, err := h.notes.Delete(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, "Note deleted successfully", note)
}
