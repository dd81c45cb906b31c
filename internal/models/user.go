package models

import "time"

// User is a registered local account. Users are stored as one JSON array
// under a single key, so the JSON field names are part of the on-disk format.
type User struct {
	// ID is an opaque unique identifier generated at signup.
	ID string `json:"id"`

	// Name is the sanitized display name (1..100 characters).
	Name string `json:"name"`

	// Email is the normalized (trimmed, lowercased) address. It is the
	// lookup key and is unique across all users.
	Email string `json:"email"`

	// PasswordHash is the hex digest of the password, never the plaintext.
	PasswordHash string `json:"passwordHash"`

	// CreatedAt is the creation time in UTC.
	CreatedAt time.Time `json:"createdAt"`
}
