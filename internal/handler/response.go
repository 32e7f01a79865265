package handler

// RESPONSE HELPERS:
// Every endpoint answers with the same envelope so clients can parse
// success and failure with one code path:
//
//	success: {"success":true, "message":"...", "data":{...}}
//	list:    {"success":true, "count":3, "data":[...]}
//	failure: {"success":false, "message":"why it failed"}
//
// The API client on the other end leans on this: it always reads "data" on
// success and always reads "message" on failure, whatever the endpoint.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/notekeeper/internal/apperror"
)

// envelope is the wire shape shared by every response.
// The omitempty tags keep each variant minimal: list responses carry count
// but no message, error responses carry neither count nor data.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// writeJSON sends a JSON response with the given status code.
//
// Order matters: headers, then status, then body. The first Write sends the
// headers, and changes after that are silently dropped.
func writeJSON(w http.ResponseWriter, status int, v envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already gone — logging is all that's left.
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// writeData sends a success envelope wrapping the payload.
func writeData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// writeList sends a success envelope for collection responses, with the
// item count alongside the data.
func writeList(w http.ResponseWriter, count int, data any) {
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// writeError maps a domain error to its HTTP status and sends the failure
// envelope.
//
// This is the single place domain errors meet HTTP. The service layer
// returns apperror sentinels (ErrNotFound, ErrUnauthorized, ...) with no
// idea what protocol the caller speaks; errors.Is walks the wrapped chain
// and this switch picks the status code.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
		}

		writeJSON(w, status, envelope{
			Success: false,
			Message: appErr.Message,
		})
		return
	}

	// Unknown error — generic 500. The raw message stays out of the
	// response: it may contain SQL fragments or file paths.
	writeJSON(w, http.StatusInternalServerError, envelope{
		Success: false,
		Message: "An internal error occurred",
	})
}
