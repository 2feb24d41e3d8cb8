package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation errors
var (
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// Claims carries the session identity embedded in a token
type Claims struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	GroupID     int    `json:"group_id"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// TokenConfig holds signing parameters shared by issuer and validator
type TokenConfig struct {
	SecretKey string
	Issuer    string
	Expiry    time.Duration
}

// TokenIssuer creates signed session tokens
type TokenIssuer struct {
	secret []byte
	issuer string
	expiry time.Duration
}

// NewTokenIssuer creates a new token issuer
func NewTokenIssuer(cfg TokenConfig) (*TokenIssuer, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &TokenIssuer{
		secret: []byte(cfg.SecretKey),
		issuer: cfg.Issuer,
		expiry: expiry,
	}, nil
}

// IssueToken signs a token for the given session identity
func (i *TokenIssuer) IssueToken(email, displayName string, groupID int, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:       email,
		DisplayName: displayName,
		GroupID:     groupID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// TokenValidator verifies session tokens
type TokenValidator struct {
	secret []byte
	issuer string
}

// NewTokenValidator creates a new token validator
func NewTokenValidator(cfg TokenConfig) (*TokenValidator, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}
	return &TokenValidator{
		secret: []byte(cfg.SecretKey),
		issuer: cfg.Issuer,
	}, nil
}

// ValidateToken parses and verifies a token, returning its claims
func (v *TokenValidator) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrInvalidToken
		}
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
