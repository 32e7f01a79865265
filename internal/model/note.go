// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// Note represents a single saved note.
//
// The `json:"..."` tags tell Go's encoding/json package how to serialize this
// struct to/from JSON. The wire names match what the API promises to clients:
// the ID field is "_id" (a convention inherited from the original Mongo-backed
// backend this API is compatible with), everything else is camelCase.
//
// IMMUTABILITY:
// ID and CreatedAt are server-assigned and never change after creation.
// Only Title and Description are mutable (via the update endpoint).
type Note struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`

	// UserID scopes the note to its owner. It is never serialized — clients
	// only ever see their own notes, so exposing the owner is redundant.
	UserID string `json:"-"`
}
