package usecase

import (
	"context"

	"staplewise/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to publish a new listing.
type CreateProductInput struct {
	Name                 string
	Grade                string
	PricePerKg           float64
	Location             string
	Stock                int
	Image                string
	Specifications       string
	DeliveryTime         string
	MinimumOrderQuantity int
	SellerID             uuid.UUID
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
}
