package models

import "time"

// User represents an account that owns material records.
// Password is only ever populated from incoming credentials and is never stored;
// PasswordHash is the bcrypt digest persisted by the store.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password is the plaintext password received during registration or login.
	// It is consumed by the auth service and must never reach the store.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
