package store

import (
	"fmt"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

// PlaceOrder converts the cart into a PENDING order at the head of the history and clears
// the cart. An empty cart is a no-op and reports false.
func (s *Store) PlaceOrder() (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return models.Order{}, false
	}

	items := cloneCart(s.cart)
	order := models.Order{
		ID:         s.uniqueOrderIDLocked(),
		CustomerID: s.user.ID,
		Items:      items,
		Total:      models.SumLines(items),
		Status:     enums.OrderStatusPending,
		CreatedAt:  s.nowFn().UTC(),
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.cart = []models.CartItem{}
	s.commit(ChangeOrders)

	if s.recorder != nil {
		s.recorder.OrderPlaced(order.Total)
	}
	return cloneOrder(order), true
}

// Orders returns the order history, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (s *Store) uniqueOrderIDLocked() string {
	taken := make(map[string]struct{}, len(s.orders))
	for _, o := range s.orders {
		taken[o.ID] = struct{}{}
	}
	id := s.newOrderID()
	for attempt := 1; ; attempt++ {
		if _, dup := taken[id]; !dup {
			return id
		}
		if attempt < maxOrderIDAttempts {
			id = s.newOrderID()
			continue
		}
		// generator keeps colliding; disambiguate deterministically
		id = fmt.Sprintf("%s-%d", id, attempt)
	}
}

func cloneOrder(o models.Order) models.Order {
	o.Items = cloneCart(o.Items)
	return o
}
