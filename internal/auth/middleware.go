package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// errNoToken reports an Authorization header that is missing or not a
// bearer credential.
var errNoToken = errors.New("auth: missing bearer token")

// contextKey is an unexported type used for context keys in this package.
//
// WHY A CUSTOM TYPE FOR CONTEXT KEYS?
// context.WithValue keys are compared by type AND value. With a plain string
// key like "userID", any package that knows the string could read or shadow
// the value. A package-private key type means only this package can touch it.
type contextKey string

const userIDKey contextKey = "userID"

// Middleware returns a chi-compatible middleware that enforces bearer-token
// authentication on protected routes.
//
// It reads the "Authorization: Bearer <token>" header, validates the JWT,
// and stores the userID in the request context. Missing or invalid tokens
// end the request with 401 and the standard response envelope, so the API
// client's error extraction sees the same shape as every other failure.
//
// BEARER HEADER, NOT COOKIES:
// This API serves non-browser clients (the notes CLI) as well as browser
// frontends, so the token travels in the Authorization header — the one
// mechanism every HTTP client can set — rather than in a cookie.
func Middleware(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := extractUserID(r, tokens)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			// Store userID in context so handlers can read it
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeUnauthorized sends the standard failure envelope for a rejected
// token. Encoded from a struct, same as the handlers do, so the shape
// can't drift from the rest of the API's responses.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{
		Success: false,
		Message: "authentication required",
	})
}

// UserIDFromContext retrieves the authenticated user's ID from the request
// context. Returns ("", false) for anonymous requests.
//
// Usage in handlers:
//
//	userID, ok := auth.UserIDFromContext(r.Context())
//	if !ok {
//	    // request never passed through Middleware
//	}
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// extractUserID pulls the bearer token out of the Authorization header and
// validates it.
//
// Header format: "Authorization: Bearer <jwt>". The scheme comparison is
// case-insensitive per RFC 7235.
func extractUserID(r *http.Request, tokens *TokenService) (string, error) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", errNoToken
	}

	return tokens.Validate(strings.TrimSpace(header[len(prefix):]))
}
