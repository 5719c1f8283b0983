package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Email is the address the user registered with. Used for password
	// reset delivery; it is never required for login.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST never leave the persistence layer.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the read-only projection of a user account returned by
// GET /getUserInfo. Joined carries the registration date pre-formatted by
// the server; the client renders it verbatim.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Joined   string `json:"joined"`
}
