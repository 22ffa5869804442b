package store

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

var (
	freeShippingThreshold = decimal.NewFromInt(150)
	flatShipping          = decimal.NewFromInt(25)
)

// AddToCart increments the line for the product, or appends a new line with quantity 1
// holding a copy of the product's current fields. It returns the resulting line.
func (s *Store) AddToCart(product models.Product) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var line models.CartItem
	if idx := s.cartIndex(product.ID); idx >= 0 {
		s.cart[idx].Quantity++
		line = s.cart[idx]
	} else {
		line = models.CartItem{Product: product, Quantity: 1}
		s.cart = append(s.cart, line)
	}
	s.commit(ChangeCart)
	s.recordCart("add")
	return line
}

// RemoveFromCart deletes the line for productID. Missing lines are a no-op.
func (s *Store) RemoveFromCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(productID)
}

// UpdateCartQuantity sets the absolute quantity of a line. A quantity of zero or less
// removes the line. It reports whether a line was found.
func (s *Store) UpdateCartQuantity(productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(productID)
	}
	idx := s.cartIndex(productID)
	if idx < 0 {
		return false
	}
	s.cart[idx].Quantity = quantity
	s.commit(ChangeCart)
	s.recordCart("update")
	return true
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = []models.CartItem{}
	s.commit(ChangeCart)
	s.recordCart("clear")
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCart(s.cart)
}

// CartSummary returns the cart lines with unit count, subtotal, shipping and total.
func (s *Store) CartSummary() models.CartSummary {
	s.mu.RLock()
	items := cloneCart(s.cart)
	s.mu.RUnlock()
	return Summarize(items)
}

// Summarize computes the cart page figures. Shipping is free for an empty cart or a
// subtotal above 150, otherwise flat.
func Summarize(items []models.CartItem) models.CartSummary {
	subtotal := models.SumLines(items)
	shipping := flatShipping
	if len(items) == 0 || subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	return models.CartSummary{
		Items:     items,
		ItemCount: models.CountUnits(items),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal.Add(shipping),
	}
}

func (s *Store) removeLocked(productID string) bool {
	idx := s.cartIndex(productID)
	if idx < 0 {
		return false
	}
	s.cart = append(s.cart[:idx], s.cart[idx+1:]...)
	s.commit(ChangeCart)
	s.recordCart("remove")
	return true
}

func (s *Store) cartIndex(productID string) int {
	for i := range s.cart {
		if s.cart[i].ID == productID {
			return i
		}
	}
	return -1
}
