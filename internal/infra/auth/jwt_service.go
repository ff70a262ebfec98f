// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"staplewise/config"
	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/service"
)

const defaultTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HMAC-signed so tampering with the embedded identity or role is detectable,
// unlike a plain reversible encoding.
type jwtService struct {
	secret   string        // Secret key for signing session tokens.
	tokenTTL time.Duration // Time-to-live for session tokens; expiry is enforced on Verify.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey.Token,
		tokenTTL: ttl,
	}, nil
}

// Generate creates a signed session token carrying the account's id, email,
// role, and issue time.
func (s *jwtService) Generate(accountID uuid.UUID, email string, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   accountID.String(),        // Subject (who the token is for)
		"email": email,                     // Login identifier
		"role":  role.String(),             // Authorization role
		"iat":   now.Unix(),                // Issued At
		"exp":   now.Add(s.tokenTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the validity of a token string and recovers its claims.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("failed to parse token structure")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	return claimsFromMap(mapClaims)
}

// TokenDuration returns the configured session token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.tokenTTL
}

func claimsFromMap(mapClaims jwt.MapClaims) (*service.Claims, error) {
	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("subject missing from token")
	}
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid subject format in token")
	}

	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, errors.New("email missing from token")
	}

	roleStr, ok := mapClaims["role"].(string)
	if !ok {
		return nil, errors.New("role missing from token")
	}
	role, ok := entity.ParseRole(roleStr)
	if !ok {
		return nil, errors.New("unknown role in token")
	}

	claims := &service.Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
	}
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = jwt.NewNumericDate(time.Unix(int64(iat), 0))
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = jwt.NewNumericDate(time.Unix(int64(exp), 0))
	}

	return claims, nil
}
