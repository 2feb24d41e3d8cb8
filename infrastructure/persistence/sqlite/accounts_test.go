package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Igaki12/news-network-api/domain/account"
)

func newTestStore(t *testing.T) *AccountStore {
	t.Helper()
	store, err := NewAccountStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAccountStoreInsertAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	acct := &account.Account{
		Email:       "a@example.com",
		Password:    "pw",
		DisplayName: "A",
		GroupID:     1,
		Role:        account.RoleStudent,
	}
	require.NoError(t, store.Insert(ctx, acct))

	got, err := store.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "A", got.DisplayName)
	assert.Equal(t, account.RoleStudent, got.Role)
}

func TestAccountStoreGetNormalizesEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, &account.Account{
		Email: "Mixed.Case@Example.com", Password: "pw", DisplayName: "M", GroupID: 1, Role: account.RoleStudent,
	}))

	got, err := store.GetByEmail(ctx, "MIXED.CASE@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "mixed.case@example.com", got.Email)
}

func TestAccountStoreNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestAccountStoreDuplicateInsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	acct := &account.Account{Email: "dup@example.com", Password: "pw", DisplayName: "D", GroupID: 1, Role: account.RoleStudent}
	require.NoError(t, store.Insert(ctx, acct))
	assert.Error(t, store.Insert(ctx, acct))
}

func TestAccountStoreSeedIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seeds := account.SeedAccounts()
	require.NoError(t, store.Seed(ctx, seeds))
	require.NoError(t, store.Seed(ctx, seeds))

	got, err := store.GetByEmail(ctx, seeds[0].Email)
	require.NoError(t, err)
	assert.Equal(t, seeds[0].DisplayName, got.DisplayName)
}

func TestAccountStoreSeedKeepsExistingPassword(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, &account.Account{
		Email: "keep@example.com", Password: "original", DisplayName: "K", GroupID: 1, Role: account.RoleStudent,
	}))
	require.NoError(t, store.Seed(ctx, []account.Account{
		{Email: "keep@example.com", Password: "overwritten", DisplayName: "K2", GroupID: 2, Role: account.RoleMentor},
	}))

	got, err := store.GetByEmail(ctx, "keep@example.com")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Password)
}
