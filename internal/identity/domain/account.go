package domain

import "time"

// Account is the persisted identity record. Created once at registration
// and never mutated afterwards; there is no profile-edit flow.
type Account struct {
	ID           string
	Name         string
	Email        string // unique key
	PasswordHash string // bcrypt blob, never the plaintext
	CreatedAt    time.Time
}

// Credentials is the transient input to registration and login. Never
// persisted and never logged; it exists only for the duration of a single
// flow invocation.
type Credentials struct {
	Name     string // registration only
	Email    string
	Password string
}
