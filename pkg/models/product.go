package models

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
)

// Product is a catalog entry. The catalog owns every Product; carts and orders hold copies.
type Product struct {
	ID          string                `json:"id" yaml:"id"`
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description" yaml:"description"`
	Price       decimal.Decimal       `json:"price" yaml:"price"`
	Category    enums.ProductCategory `json:"category" yaml:"category"`
	Image       string                `json:"image" yaml:"image"`
	VendorID    string                `json:"vendor_id" yaml:"vendor_id"`
	Stock       int                   `json:"stock" yaml:"stock"`
	Rating      float64               `json:"rating" yaml:"rating"`
	Reviews     int                   `json:"reviews" yaml:"reviews"`
}
