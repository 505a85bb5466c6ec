package service

import (
	"time"

	"veraz/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of a session token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SessionToken is a signed token and the moment it stops being accepted.
type SessionToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating session tokens.
type TokenService interface {
	// GenerateToken signs a session token for the given user.
	GenerateToken(userID uint, role entity.Role) (*SessionToken, error)

	// ValidateToken checks a token and returns the identity it carries.
	ValidateToken(tokenString string) (*entity.Identity, error)

	// TokenTTL returns how long issued tokens stay valid.
	TokenTTL() time.Duration
}
