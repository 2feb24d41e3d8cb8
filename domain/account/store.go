package account

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no account exists for an email
var ErrNotFound = errors.New("account not found")

// Store persists demo accounts
type Store interface {
	// GetByEmail looks up an account by normalized email. Returns ErrNotFound
	// when no account exists.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// Insert stores a new account. The email must not already exist.
	Insert(ctx context.Context, acct *Account) error

	// Seed inserts the given accounts, skipping any that already exist
	Seed(ctx context.Context, accounts []Account) error

	// Close releases the underlying storage handle
	Close() error
}
