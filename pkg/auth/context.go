package auth

import (
	"context"

	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

// UserContext carries the authenticated identity through a request
type UserContext struct {
	Email       string
	DisplayName string
	GroupID     int
	Role        string
}

type contextKey string

const userContextKey contextKey = "user"

// SetUserInContext stores the user context on a request context
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext retrieves the user context set by the auth middleware
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, apperrors.NewUnauthorizedError("no authenticated user in context")
	}
	return user, nil
}
