// Package sqlite stores demo accounts in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Igaki12/news-network-api/domain/account"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	email        TEXT PRIMARY KEY,
	password     TEXT NOT NULL,
	display_name TEXT NOT NULL,
	group_id     INTEGER NOT NULL,
	role         TEXT NOT NULL
);
`

// AccountStore is a SQLite-backed account.Store
type AccountStore struct {
	db *sql.DB
}

// NewAccountStore opens (or creates) the account database at path and ensures
// the schema exists.
func NewAccountStore(path string) (*AccountStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open account db: %w", err)
	}
	// SQLite handles one writer at a time; serialize access at the pool level.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init account schema: %w", err)
	}
	return &AccountStore{db: db}, nil
}

// GetByEmail looks up an account by normalized email
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	email = account.NormalizeEmail(email)

	var acct account.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT email, password, display_name, group_id, role FROM accounts WHERE email = ?`,
		email,
	).Scan(&acct.Email, &acct.Password, &acct.DisplayName, &acct.GroupID, &acct.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", email, err)
	}
	return &acct, nil
}

// Insert stores a new account
func (s *AccountStore) Insert(ctx context.Context, acct *account.Account) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (email, password, display_name, group_id, role) VALUES (?, ?, ?, ?, ?)`,
		account.NormalizeEmail(acct.Email), acct.Password, acct.DisplayName, acct.GroupID, string(acct.Role),
	)
	if err != nil {
		return fmt.Errorf("insert account %s: %w", acct.Email, err)
	}
	return nil
}

// Seed inserts the given accounts, skipping any that already exist
func (s *AccountStore) Seed(ctx context.Context, accounts []account.Account) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, acct := range accounts {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO accounts (email, password, display_name, group_id, role) VALUES (?, ?, ?, ?, ?)`,
			account.NormalizeEmail(acct.Email), acct.Password, acct.DisplayName, acct.GroupID, string(acct.Role),
		); err != nil {
			return fmt.Errorf("seed account %s: %w", acct.Email, err)
		}
	}
	return tx.Commit()
}

// Close releases the database handle
func (s *AccountStore) Close() error {
	return s.db.Close()
}
