package seed

import (
	"staplewise/internal/domain/entity"

	"github.com/google/uuid"
)

// demoProducts returns the starter catalog. Prices are per kg in INR and
// stock is in tonnes, matching the storefront's units.
func demoProducts(sellerID uuid.UUID) []*entity.Product {
	return []*entity.Product{
		{
			Name:                 "Premium W320 Cashews",
			Grade:                "W320",
			PricePerKg:           85,
			Location:             "Mangalore",
			Stock:                500,
			Specifications:       "Premium quality W320 grade cashews, 320 kernels per pound",
			DeliveryTime:         "7-10 days",
			MinimumOrderQuantity: 100,
			SellerID:             sellerID,
		},
		{
			Name:                 "W180 Jumbo Cashews",
			Grade:                "W180",
			PricePerKg:           95,
			Location:             "Panruti",
			Stock:                300,
			Specifications:       "Jumbo size W180 grade cashews, premium export quality",
			DeliveryTime:         "5-7 days",
			MinimumOrderQuantity: 50,
			SellerID:             sellerID,
		},
		{
			Name:                 "LWP Cashew Pieces",
			Grade:                "LWP",
			PricePerKg:           75,
			Location:             "Mumbai",
			Stock:                800,
			Specifications:       "Large white pieces, ideal for food processing",
			DeliveryTime:         "3-5 days",
			MinimumOrderQuantity: 200,
			SellerID:             sellerID,
		},
		{
			Name:                 "SWP Cashew Pieces",
			Grade:                "SWP",
			PricePerKg:           65,
			Location:             "Kollam",
			Stock:                600,
			Specifications:       "Small white pieces, suitable for confectionery",
			DeliveryTime:         "5-7 days",
			MinimumOrderQuantity: 150,
			SellerID:             sellerID,
		},
	}
}
