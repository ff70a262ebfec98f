package impl

import (
	"context"
	"log/slog"

	deliverycontext "staplewise/internal/delivery/context"
	"staplewise/internal/domain/entity"
	domainerrors "staplewise/internal/domain/errors"
	"staplewise/internal/domain/repository"
	"staplewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns listings matching the filter, newest first.
func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single listing by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// CreateProduct publishes a new listing on behalf of a seller account.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name), slog.Any("sellerID", input.SellerID))

	seller, err := srv.accountRepo.FindByID(ctx, input.SellerID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("seller account does not exist")
		}

		return nil, errors.Wrap(err, "failed to load seller account")
	}
	if seller.Role != entity.RoleSeller {
		srv.log(ctx).Warn("Non-seller attempted to publish listing", slog.Any("accountID", seller.ID), slog.Any("role", seller.Role))

		return nil, domainerrors.ErrForbidden.WrapMessage("only sellers can publish listings")
	}

	product := &entity.Product{
		Name:                 input.Name,
		Grade:                input.Grade,
		PricePerKg:           input.PricePerKg,
		Location:             input.Location,
		Stock:                input.Stock,
		Image:                input.Image,
		Specifications:       input.Specifications,
		DeliveryTime:         input.DeliveryTime,
		MinimumOrderQuantity: input.MinimumOrderQuantity,
		SellerID:             seller.ID,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}
