package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/domain/account"
	"github.com/Igaki12/news-network-api/pkg/auth"
	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

// memoryStore is an in-memory account.Store for service tests
type memoryStore struct {
	accounts map[string]account.Account
}

func newMemoryStore() *memoryStore {
	return &memoryStore{accounts: make(map[string]account.Account)}
}

func (s *memoryStore) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	acct, ok := s.accounts[account.NormalizeEmail(email)]
	if !ok {
		return nil, account.ErrNotFound
	}
	return &acct, nil
}

func (s *memoryStore) Insert(ctx context.Context, acct *account.Account) error {
	s.accounts[account.NormalizeEmail(acct.Email)] = *acct
	return nil
}

func (s *memoryStore) Seed(ctx context.Context, accounts []account.Account) error {
	for _, acct := range accounts {
		key := account.NormalizeEmail(acct.Email)
		if _, ok := s.accounts[key]; !ok {
			s.accounts[key] = acct
		}
	}
	return nil
}

func (s *memoryStore) Close() error { return nil }

func newTestAuthService(t *testing.T) (*AuthService, *memoryStore) {
	t.Helper()
	store := newMemoryStore()
	require.NoError(t, store.Seed(context.Background(), account.SeedAccounts()))

	issuer, err := auth.NewTokenIssuer(auth.TokenConfig{SecretKey: "test-secret", Issuer: "test"})
	require.NoError(t, err)

	return NewAuthService(store, issuer, zap.NewNop()), store
}

func TestAuthServiceSignIn(t *testing.T) {
	svc, _ := newTestAuthService(t)

	t.Run("seeded account with correct password", func(t *testing.T) {
		session, err := svc.SignIn(context.Background(), "student.alpha+demo01@example.com", "NewsQuest#01")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "Student Alpha", session.Account.DisplayName)
		assert.Equal(t, 1, session.Group.ID)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		session, err := svc.SignIn(context.Background(), "  Student.Alpha+Demo01@Example.COM ", "NewsQuest#01")
		require.NoError(t, err)
		assert.Equal(t, "student.alpha+demo01@example.com", session.Account.Email)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.SignIn(context.Background(), "student.alpha+demo01@example.com", "nope")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	})

	t.Run("unknown email is auto-provisioned into the fallback group", func(t *testing.T) {
		session, err := svc.SignIn(context.Background(), "new.visitor@example.com", "whatever")
		require.NoError(t, err)
		assert.Equal(t, fallbackGroupID, session.Account.GroupID)
		assert.Equal(t, "New Visitor", session.Account.DisplayName)
		assert.Equal(t, account.RoleStudent, session.Account.Role)

		// The provisioned password sticks.
		_, err = svc.SignIn(context.Background(), "new.visitor@example.com", "different")
		require.Error(t, err)
	})

	t.Run("missing credentials fail validation", func(t *testing.T) {
		_, err := svc.SignIn(context.Background(), "", "pw")
		assert.True(t, apperrors.IsValidation(err))
		_, err = svc.SignIn(context.Background(), "a@example.com", "")
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestAuthServiceSignUp(t *testing.T) {
	svc, store := newTestAuthService(t)

	t.Run("registers a new account", func(t *testing.T) {
		session, err := svc.SignUp(context.Background(), "fresh@example.com", "password123", "Fresh User", 2)
		require.NoError(t, err)
		assert.Equal(t, 2, session.Account.GroupID)
		assert.Equal(t, "Metropolitan Policy Lab", session.Group.Name)

		stored, err := store.GetByEmail(context.Background(), "fresh@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Fresh User", stored.DisplayName)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.SignUp(context.Background(), "student.alpha+demo01@example.com", "password123", "", 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("unknown group fails validation", func(t *testing.T) {
		_, err := svc.SignUp(context.Background(), "another@example.com", "password123", "", 99)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("blank display name derives from email", func(t *testing.T) {
		session, err := svc.SignUp(context.Background(), "quiet.learner@example.com", "password123", "", 3)
		require.NoError(t, err)
		assert.Equal(t, "Quiet Learner", session.Account.DisplayName)
	})
}

func TestAuthServiceGroups(t *testing.T) {
	svc, _ := newTestAuthService(t)
	groups := svc.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, "NewsQuest Academy 1年A組", groups[0].Name)
}
