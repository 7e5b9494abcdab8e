package store

import (
	"context"
	"errors"

	"github.com/accessly/authd/internal/identity/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Uniqueness of account emails is enforced here, in the
// driver's constraint system, because the flow's check-then-create is not
// atomic across concurrent registrations.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used for login lookup and the registration
	// duplicate pre-check. Email comparison follows the driver's own
	// collation.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by the app via
	// ULID). A uniqueness violation on email is reported as
	// ErrAlreadyExists, not as a generic failure.
	CreateAccount(ctx context.Context, a domain.Account) error

	// CountAccounts returns the number of stored accounts.
	CountAccounts(ctx context.Context) (int64, error)
}
