package localstore

import (
	"context"
	"sort"
	"strings"
	"time"

	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productRepository implements repository.ProductRepository on a JSON blob file.
type productRepository struct {
	products *collection[*entity.Product]
}

// NewProductRepository is the constructor for productRepository.
// Products live in <dir>/products.json as one contiguous collection.
func NewProductRepository(dir string) (repository.ProductRepository, error) {
	products, err := newCollection[*entity.Product](dir, "products")
	if err != nil {
		return nil, err
	}

	return &productRepository{products: products}, nil
}

// List returns products matching the filter, newest first.
func (repo *productRepository) List(_ context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := repo.products.load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if matchesFilter(product, filter) {
			matched = append(matched, product)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	products, err := repo.products.load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// Create generates the product's ID and CreatedAt and appends it to the blob.
func (repo *productRepository) Create(_ context.Context, product *entity.Product) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate product id")
	}
	product.ID = id
	product.CreatedAt = time.Now().UTC()

	err = repo.products.update(func(products []*entity.Product) ([]*entity.Product, error) {
		return append(products, product), nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

func matchesFilter(product *entity.Product, filter entity.ProductFilter) bool {
	if filter.Grade != "" && product.Grade != filter.Grade {
		return false
	}
	if filter.Location != "" && product.Location != filter.Location {
		return false
	}
	if filter.MinPriceKg > 0 && product.PricePerKg < filter.MinPriceKg {
		return false
	}
	if filter.MaxPriceKg > 0 && product.PricePerKg > filter.MaxPriceKg {
		return false
	}
	if filter.InStockOnly && product.Stock <= 0 {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(product.Name), needle) &&
			!strings.Contains(strings.ToLower(product.Specifications), needle) {
			return false
		}
	}

	return true
}
