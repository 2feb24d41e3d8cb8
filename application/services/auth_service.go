package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/domain/account"
	"github.com/Igaki12/news-network-api/pkg/auth"
	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

// fallbackGroupID receives auto-provisioned sign-ins that name no group
const fallbackGroupID = 1

// Session is an authenticated sign-in: the account, its group, and a bearer
// token for subsequent requests.
type Session struct {
	Token   string          `json:"token"`
	Account account.Account `json:"account"`
	Group   account.Group   `json:"group"`
}

// AuthService implements the demo credential flows. Sign-in is deliberately
// permissive: unknown emails are auto-provisioned into the fallback group so
// a classroom can start without pre-registration.
type AuthService struct {
	store  account.Store
	issuer *auth.TokenIssuer
	logger *zap.Logger
}

// NewAuthService creates the auth service
func NewAuthService(store account.Store, issuer *auth.TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{store: store, issuer: issuer, logger: logger}
}

// Groups lists the built-in cohorts
func (s *AuthService) Groups() []account.Group {
	return account.DefaultGroups()
}

// SignIn authenticates an email/password pair. A known email must match its
// stored password; an unknown email is provisioned on the spot with the
// submitted password and a display name derived from the address.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = account.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	acct, err := s.store.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, account.ErrNotFound):
		acct = &account.Account{
			Email:       email,
			Password:    password,
			DisplayName: account.DisplayNameFromEmail(email),
			GroupID:     fallbackGroupID,
			Role:        account.RoleStudent,
		}
		if err := s.store.Insert(ctx, acct); err != nil {
			return nil, apperrors.Wrap(err, "provision account")
		}
		s.logger.Info("auto-provisioned account", zap.String("email", email))
	case err != nil:
		return nil, apperrors.Wrap(err, "look up account")
	case acct.Password != password:
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	return s.sessionFor(acct)
}

// SignUp registers a new account in an existing group
func (s *AuthService) SignUp(ctx context.Context, email, password, displayName string, groupID int) (*Session, error) {
	email = account.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}
	group, ok := groupByID(groupID)
	if !ok {
		return nil, apperrors.NewValidationError("unknown group")
	}
	if displayName == "" {
		displayName = account.DisplayNameFromEmail(email)
	}

	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("an account with this email already exists")
	} else if !errors.Is(err, account.ErrNotFound) {
		return nil, apperrors.Wrap(err, "look up account")
	}

	acct := &account.Account{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
		GroupID:     group.ID,
		Role:        account.RoleStudent,
	}
	if err := s.store.Insert(ctx, acct); err != nil {
		return nil, apperrors.Wrap(err, "create account")
	}

	s.logger.Info("account registered",
		zap.String("email", email),
		zap.Int("group_id", group.ID),
	)
	return s.sessionFor(acct)
}

func (s *AuthService) sessionFor(acct *account.Account) (*Session, error) {
	token, err := s.issuer.IssueToken(acct.Email, acct.DisplayName, acct.GroupID, string(acct.Role))
	if err != nil {
		return nil, apperrors.Wrap(err, "issue session token")
	}
	group, ok := groupByID(acct.GroupID)
	if !ok {
		group = account.DefaultGroups()[0]
	}
	return &Session{Token: token, Account: *acct, Group: group}, nil
}

func groupByID(id int) (account.Group, bool) {
	for _, g := range account.DefaultGroups() {
		if g.ID == id {
			return g, true
		}
	}
	return account.Group{}, false
}
