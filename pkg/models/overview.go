package models

import "github.com/shopspring/decimal"

// Overview aggregates marketplace figures for the admin dashboard.
type Overview struct {
	ProductCount int             `json:"product_count"`
	VendorCount  int             `json:"vendor_count"`
	OrderCount   int             `json:"order_count"`
	UnitsSold    int             `json:"units_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}
