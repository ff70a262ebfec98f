package auth

import (
	"testing"
	"time"

	"staplewise/config"
	"staplewise/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Token: "test_token_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{
			TokenTTL: ttl,
		},
	}
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := uuid.New()

	token, err := jwtService.Generate(accountID, "buyer@example.com", entity.RoleBuyer)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// The token round-trips the identity fields.
	claims, err := jwtService.Verify(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, entity.RoleBuyer, claims.Role)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	assert.NoError(t, err)

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	assert.NoError(t, err)

	token, err := jwtService.Generate(uuid.New(), "seller@example.com", entity.RoleSeller)
	assert.NoError(t, err)

	// Flipping a payload byte must break the signature check.
	tampered := token[:len(token)-2] + "xx"
	claims, err := jwtService.Verify(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Construct directly with a negative TTL so the token is born expired.
	jwtService := &jwtService{secret: "test_token_secret", tokenTTL: -time.Minute}

	token, err := jwtService.Generate(uuid.New(), "admin@staplewise.com", entity.RoleAdmin)
	assert.NoError(t, err)

	claims, err := jwtService.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
