package models

import "github.com/shopspring/decimal"

// CartItem is a product snapshot taken when the product entered the cart, plus a quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns unit price times quantity.
func (c CartItem) LineTotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// CartSummary is the cart page read model.
type CartSummary struct {
	Items     []CartItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
}

// SumLines returns Σ price × quantity over the given lines.
func SumLines(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// CountUnits returns Σ quantity over the given lines.
func CountUnits(items []CartItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}
