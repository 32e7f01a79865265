package client

import "net/http"

// APIError is the one failure type every client operation returns.
//
// Callers branch on Status alone: 401 means the session is dead (log in
// again), everything else is displayed via Message. There is deliberately
// no richer taxonomy on this side — the server's envelope message is
// already human-readable, and the client has no business second-guessing
// it.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether the error is an authentication failure —
// the signal that the stored session token is invalid or expired.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// IsNotFound reports whether the referenced resource no longer exists.
func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}
