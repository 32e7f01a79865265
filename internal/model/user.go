// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account.
//
// Identity is email/password based: Email is the unique external identifier,
// and we generate our own internal string ID (xid) for primary keys so that
// renaming an email address never has to cascade through foreign keys.
//
// WHY IS PasswordHash NEVER SERIALIZED?
// The `json:"-"` tag excludes the field from every JSON encoding. Even an
// accidental `writeJSON(w, user)` in a handler cannot leak the bcrypt hash.
// Defense at the type level beats remembering to strip it in every handler.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"` // optional, may be empty
	CreatedAt time.Time `json:"createdAt"`

	PasswordHash string `json:"-"`
}
