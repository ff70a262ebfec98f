// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"staplewise/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence. The application layer
// handles these without depending on storage-specific error types.
var (
	// ErrAccountNotFound is returned when no account matches a lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an insert collides with an existing email.
	ErrDuplicateEmail = errors.New("account email already exists")
)

// AccountRepository defines the standard operations for account persistence.
// The store is the sole writer of accounts; the session authority only reads
// through it and creates accounts through Create.
type AccountRepository interface {
	// List returns every account in insertion order.
	List(ctx context.Context) ([]*entity.Account, error)

	// FindByEmail retrieves a single account by exact, case-sensitive email match.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Create persists a new account, generating its ID and CreatedAt.
	// Email uniqueness is enforced by the backend where it can be (unique
	// index); callers still pre-check via FindByEmail to keep the reference
	// register flow's semantics.
	Create(ctx context.Context, account *entity.Account) error
}
