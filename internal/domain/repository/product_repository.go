// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"staplewise/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches a lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// List returns products matching the filter, newest first.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product listing, generating its ID and CreatedAt.
	Create(ctx context.Context, product *entity.Product) error
}
