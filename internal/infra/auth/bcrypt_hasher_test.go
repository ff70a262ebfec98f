package auth

import (
	"testing"

	"staplewise/config"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	password := "password123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashNeverEchoesPlaintext(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	passwords := []string{"a", "password123", "correct horse battery staple", "密碼"}
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		assert.NoError(t, err)
		assert.NotEqual(t, password, hash, "hash must differ from plaintext for %q", password)
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})
	password := "password123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("password124", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// A hash of a different password never verifies
	otherHash, err := hasher.Hash("another-password")
	assert.NoError(t, err)
	assert.False(t, hasher.Check(password, otherHash))
}
