// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"staplewise/internal/delivery/http/middleware"
	"staplewise/internal/delivery/http/router/handler"
	"staplewise/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	EnquiryHandler *handler.EnquiryHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	enquiryHandler *handler.EnquiryHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		enquiryHandler: params.EnquiryHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Catalog routes: browsing is public, publishing is for sellers only.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.POST("", r.catalogHandler.CreateProduct,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleSeller),
		)
	}

	// Enquiry routes: submission is open to anonymous visitors, the sales
	// workflow is restricted to internal staff.
	enquiryGroup := e.Group("/enquiries")
	{
		enquiryGroup.POST("", r.enquiryHandler.SubmitEnquiry)

		staffOnly := []echo.MiddlewareFunc{
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSales),
		}
		enquiryGroup.GET("", r.enquiryHandler.ListEnquiries, staffOnly...)
		enquiryGroup.PATCH("/:id", r.enquiryHandler.UpdateEnquiry, staffOnly...)
	}
}
