package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
)

// Order is an immutable record of a completed checkout.
type Order struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	Items      []CartItem        `json:"items"`
	Total      decimal.Decimal   `json:"total"`
	Status     enums.OrderStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// ItemCount returns the number of units across the order's lines.
func (o Order) ItemCount() int {
	return CountUnits(o.Items)
}
