package service

import (
	"time"

	"estate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the verified contents of an access token.
type Claims struct {
	Principal entity.Principal
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the principal and returns its expiry.
	GenerateAccessToken(principal entity.Principal) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature, expiry and principal claims.
	ValidateToken(tokenString string) (*Claims, error)
}
