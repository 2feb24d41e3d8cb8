package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/pkg/auth"
	"github.com/Igaki12/news-network-api/pkg/common"
)

// Authenticate verifies the Bearer token and installs the user context.
// Requests without a valid token are rejected before reaching the handler.
func Authenticate(validator *auth.TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authorization header required")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "bearer token required")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
				Email:       claims.Email,
				DisplayName: claims.DisplayName,
				GroupID:     claims.GroupID,
				Role:        claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
