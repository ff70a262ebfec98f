package postgres

import (
	"context"
	"time"

	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"
	"staplewise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns listings matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Grade != "" {
		query = query.Where("grade = ?", filter.Grade)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.MinPriceKg > 0 {
		query = query.Where("price_per_kg >= ?", filter.MinPriceKg)
	}
	if filter.MaxPriceKg > 0 {
		query = query.Where("price_per_kg <= ?", filter.MaxPriceKg)
	}
	if filter.InStockOnly {
		query = query.Where("stock > 0")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR specifications ILIKE ?", pattern, pattern)
	}

	var productMs []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a single listing by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new listing.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate product id")
	}
	product.ID = id
	product.CreatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).Create(fromProductDomain(product)).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:                   productM.ID,
		Name:                 productM.Name,
		Grade:                productM.Grade,
		Location:             productM.Location,
		PricePerKg:           productM.PricePerKg,
		Stock:                productM.Stock,
		Image:                productM.Image,
		DeliveryTime:         productM.DeliveryTime,
		MinimumOrderQuantity: productM.MinimumOrderQuantity,
		Specifications:       productM.Specifications,
		SellerID:             productM.SellerID,
		CreatedAt:            productM.CreatedAt,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                   product.ID,
		Name:                 product.Name,
		Grade:                product.Grade,
		Location:             product.Location,
		PricePerKg:           product.PricePerKg,
		Stock:                product.Stock,
		Image:                product.Image,
		DeliveryTime:         product.DeliveryTime,
		MinimumOrderQuantity: product.MinimumOrderQuantity,
		Specifications:       product.Specifications,
		SellerID:             product.SellerID,
		CreatedAt:            product.CreatedAt,
	}
}
