package service

import (
	"time"

	"staplewise/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token: the account's
// identity, login email, role, and issue time (inside RegisteredClaims).
type Claims struct {
	AccountID uuid.UUID
	Email     string
	Role      entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token encoding from the use cases; the token
// string is opaque to every caller except Verify.
type TokenService interface {
	// Generate creates a signed session token for the given account identity.
	Generate(accountID uuid.UUID, email string, role entity.Role) (string, error)

	// Verify checks a token string's signature and expiry and recovers its claims.
	Verify(tokenString string) (*Claims, error)

	// TokenDuration returns the configured session token lifetime.
	TokenDuration() time.Duration
}
