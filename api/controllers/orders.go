package controllers

import (
	"net/http"

	"github.com/angelmondragon/swiftmarket-backend/api/responses"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

type placeOrderResponse struct {
	Placed bool          `json:"placed"`
	Order  *models.Order `json:"order,omitempty"`
}

// OrdersList returns the order history, newest first.
func OrdersList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		responses.WriteSuccess(w, s.Orders())
	}
}

// OrdersPlace checks out the cart. An empty cart answers placed=false.
func OrdersPlace(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}

		order, placed := s.PlaceOrder()
		if !placed {
			responses.WriteSuccess(w, placeOrderResponse{Placed: false})
			return
		}

		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"order_id": order.ID,
				"total":    order.Total.StringFixed(2),
				"units":    order.ItemCount(),
			})
			logg.Info(ctx, "order.placed")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, placeOrderResponse{Placed: true, Order: &order})
	}
}
