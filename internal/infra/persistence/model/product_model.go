package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	Grade                string    `gorm:"type:varchar(32);not null;index"`
	PricePerKg           float64   `gorm:"not null"`
	Location             string    `gorm:"type:varchar(100);index"`
	Stock                int       `gorm:"not null"`
	Image                string    `gorm:"type:text"`
	Specifications       string    `gorm:"type:text"`
	DeliveryTime         string    `gorm:"type:varchar(100)"`
	MinimumOrderQuantity int
	SellerID             uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt            time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
