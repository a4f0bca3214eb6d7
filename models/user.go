package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// IsActive marks whether the account may authenticate. Accounts are
	// soft-disabled via this flag rather than deleted.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary reduces the user record to the minimal identity projection that is
// safe to embed in reauthentication cookies and API responses.
func (u User) Summary() IdentitySummary {
	return IdentitySummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// IdentitySummary is the minimal identity projection restored from a
// reauthentication cookie and returned by GET /api/auth/me.
type IdentitySummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
