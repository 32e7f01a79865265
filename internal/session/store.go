// Package session persists the authentication token between CLI
// invocations.
//
// The store is the CLI's equivalent of a browser's localStorage: one opaque
// value, surviving "page reloads" (process restarts), cleared on logout or
// when the server says the session is dead. It holds at most one token —
// saving overwrites whatever was there.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes the token file. The zero value is not usable;
// construct it with New or NewWithPath so the path is resolved once.
type Store struct {
	path string
}

// New creates a Store over the default token file,
// ~/.config/notekeeper/token.
func New() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("session: cannot determine home directory: %w", err)
	}
	return NewWithPath(filepath.Join(home, ".config", "notekeeper", "token")), nil
}

// NewWithPath creates a Store over an explicit file path. Tests point this
// at t.TempDir(); the CLI's --config can relocate it too.
func NewWithPath(path string) *Store {
	return &Store{path: path}
}

// Token returns the stored token and whether one exists.
//
// ABSENCE IS NOT AN ERROR:
// A missing token file just means "not logged in" — an entirely normal
// state, reported through the bool. Unreadable files land in the same
// bucket: if we can't produce a token, the caller proceeds
// unauthenticated and the server has the final word.
func (s *Store) Token() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}

	return token, true
}

// Save overwrites the stored token, creating the parent directory if
// needed. The file is mode 0600 — the token grants the user's full
// permissions, so nobody else on the machine gets to read it.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("session: creating token directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("session: writing token: %w", err)
	}

	return nil
}

// Clear removes the stored token. Clearing an absent token is a no-op, not
// an error — logout must be idempotent.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: removing token: %w", err)
	}
	return nil
}
