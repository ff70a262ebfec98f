// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"staplewise/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	Role        entity.Role
	CompanyName string
	GST         string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the sanitized profile plus a signed session token.
// The password hash never rides along.
type AuthOutput struct {
	Profile *entity.Profile
	Token   string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// VerifyToken resolves a bearer token back to the live account profile.
	// A token whose account has since disappeared is treated as invalid.
	VerifyToken(ctx context.Context, token string) (*entity.Profile, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}
