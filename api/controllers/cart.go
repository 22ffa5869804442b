package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/swiftmarket-backend/api/responses"
	"github.com/angelmondragon/swiftmarket-backend/api/validators"
	pkgerrors "github.com/angelmondragon/swiftmarket-backend/pkg/errors"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
	"github.com/angelmondragon/swiftmarket-backend/pkg/types"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=99"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type cartMutationResponse struct {
	types.MutationResult
	Cart models.CartSummary `json:"cart"`
}

type addCartItemResponse struct {
	Line models.CartItem    `json:"line"`
	Cart models.CartSummary `json:"cart"`
}

// CartGet returns the cart summary.
func CartGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		responses.WriteSuccess(w, s.CartSummary())
	}
}

// CartAddItem adds a catalog product to the cart, one unit unless quantity says otherwise.
func CartAddItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, ok := s.Product(payload.ProductID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]string{"product_id": payload.ProductID}))
			return
		}

		qty := max(payload.Quantity, 1)
		var line models.CartItem
		for range qty {
			line = s.AddToCart(product)
		}
		responses.WriteSuccess(w, addCartItemResponse{Line: line, Cart: s.CartSummary()})
	}
}

// CartUpdateItem sets a line's quantity; zero or less removes it.
func CartUpdateItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		found := s.UpdateCartQuantity(chi.URLParam(r, "productId"), *payload.Quantity)
		responses.WriteSuccess(w, cartMutationResponse{
			MutationResult: types.MutationResult{Found: found},
			Cart:           s.CartSummary(),
		})
	}
}

// CartRemoveItem deletes a line. Missing lines report found=false.
func CartRemoveItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		found := s.RemoveFromCart(chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, cartMutationResponse{
			MutationResult: types.MutationResult{Found: found},
			Cart:           s.CartSummary(),
		})
	}
}

// CartClear empties the cart.
func CartClear(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		s.ClearCart()
		responses.WriteSuccess(w, s.CartSummary())
	}
}
