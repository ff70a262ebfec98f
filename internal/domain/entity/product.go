// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents one cashew kernel listing in the catalog.
type Product struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Grade                string    `json:"grade"` // Trade grade, e.g. "W320", "LWP", "SWP".
	PricePerKg           float64   `json:"pricePerKg"`
	Location             string    `json:"location"` // Processing/dispatch city.
	Stock                int       `json:"stock"`    // Available stock in tonnes.
	Image                string    `json:"image"`
	Specifications       string    `json:"specifications"`
	DeliveryTime         string    `json:"deliveryTime"`
	MinimumOrderQuantity int       `json:"minimumOrderQuantity"`
	SellerID             uuid.UUID `json:"sellerId"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ProductFilter narrows catalog listings. Zero values disable a clause.
type ProductFilter struct {
	Grade       string
	Location    string
	MinPriceKg  float64
	MaxPriceKg  float64
	InStockOnly bool
	Search      string // Matches name or specifications, case-insensitive.
}
