package models

import "time"

// User represents an account entity used for authentication.
// Passwords are stored and compared as-is; the demo deliberately carries no
// hashing or account management (see DESIGN.md).
type User struct {
	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password is the user's password exactly as submitted at registration.
	Password string `json:"password"`

	// CreatedAt is the timestamp when the user account was created.
	// Populated only by SQL-backed credential stores.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
