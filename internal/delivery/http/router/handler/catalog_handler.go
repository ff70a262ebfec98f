package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"staplewise/internal/delivery/http/middleware"
	"staplewise/internal/delivery/http/response"
	"staplewise/internal/domain/entity"
	"staplewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProductRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Grade                string  `json:"grade" validate:"required"`
	PricePerKg           float64 `json:"pricePerKg" validate:"required,gt=0"`
	Location             string  `json:"location" validate:"required"`
	Stock                int     `json:"stock" validate:"gte=0"`
	Image                string  `json:"image"`
	Specifications       string  `json:"specifications"`
	DeliveryTime         string  `json:"deliveryTime"`
	MinimumOrderQuantity int     `json:"minimumOrderQuantity" validate:"gte=0"`
}

// ListProducts returns catalog listings, optionally narrowed by query
// parameters: grade, location, minPrice, maxPrice, inStock, search.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := entity.ProductFilter{
		Grade:    c.QueryParam("grade"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "minPrice must be a number")
		}
		filter.MinPriceKg = value
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "maxPrice must be a number")
		}
		filter.MaxPriceKg = value
	}
	if raw := c.QueryParam("inStock"); raw != "" {
		filter.InStockOnly = raw == "true"
	}

	products, err := h.uc.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct returns a single listing by its ID.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct publishes a new listing for the authenticated seller.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	sellerID, ok := c.Get(middleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:                 req.Name,
		Grade:                req.Grade,
		PricePerKg:           req.PricePerKg,
		Location:             req.Location,
		Stock:                req.Stock,
		Image:                req.Image,
		Specifications:       req.Specifications,
		DeliveryTime:         req.DeliveryTime,
		MinimumOrderQuantity: req.MinimumOrderQuantity,
		SellerID:             sellerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}
