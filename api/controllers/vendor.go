package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmarket-backend/api/responses"
	"github.com/angelmondragon/swiftmarket-backend/api/validators"
	"github.com/angelmondragon/swiftmarket-backend/internal/catalog"
	"github.com/angelmondragon/swiftmarket-backend/internal/describe"
	"github.com/angelmondragon/swiftmarket-backend/internal/store"
	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmarket-backend/pkg/errors"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
	"github.com/angelmondragon/swiftmarket-backend/pkg/types"
)

type describer interface {
	Describe(ctx context.Context, name, category string) describe.Result
}

// productRequest is the vendor listing form.
type productRequest struct {
	Name                string           `json:"name" validate:"required,max=200"`
	Description         string           `json:"description" validate:"max=2000"`
	Price               *decimal.Decimal `json:"price" validate:"required"`
	Category            string           `json:"category" validate:"required,product_category"`
	Stock               int              `json:"stock"`
	Image               string           `json:"image" validate:"omitempty,url"`
	GenerateDescription bool             `json:"generate_description"`
}

type describeRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category" validate:"required"`
}

type vendorProductResponse struct {
	Product     models.Product   `json:"product"`
	Description *describe.Result `json:"description,omitempty"`
}

type updateProductResponse struct {
	types.MutationResult
	Product models.Product `json:"product"`
}

func (p productRequest) category() (enums.ProductCategory, error) {
	category, err := enums.ParseProductCategory(p.Category)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown category").
			WithDetails(map[string]any{"category": p.Category, "allowed": enums.ProductCategories()})
	}
	return category, nil
}

// VendorListProducts returns the vendor's own listings in catalog order.
func VendorListProducts(vendorID string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		responses.WriteSuccess(w, s.VendorProducts(vendorID))
	}
}

// VendorCreateProduct prepends a new listing to the catalog. With generate_description and
// an empty description, generated copy is used when available.
func VendorCreateProduct(svc describer, vendorID string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		category, err := payload.category()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product := models.Product{
			ID:          store.NewProductID(),
			Name:        strings.TrimSpace(payload.Name),
			Description: payload.Description,
			Price:       *payload.Price,
			Category:    category,
			Image:       payload.Image,
			VendorID:    vendorID,
			Stock:       payload.Stock,
		}
		if product.Image == "" {
			product.Image = catalog.RandomImage()
		}

		var generated *describe.Result
		if payload.GenerateDescription && strings.TrimSpace(product.Description) == "" && svc != nil {
			res := svc.Describe(r.Context(), product.Name, string(category))
			generated = &res
			if res.Generated {
				product.Description = res.Text
			}
		}

		s.AddProduct(product)
		if logg != nil {
			logg.Info(logg.WithField(r.Context(), "product_id", product.ID), "product.created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, vendorProductResponse{Product: product, Description: generated})
	}
}

// VendorUpdateProduct replaces a listing, keeping its image, rating and reviews.
// Unknown ids report found=false.
func VendorUpdateProduct(vendorID string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		category, err := payload.category()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		existing, ok := s.Product(chi.URLParam(r, "productId"))
		if !ok {
			responses.WriteSuccess(w, types.MutationResult{Found: false})
			return
		}
		if existing.VendorID != vendorID {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "listing belongs to another vendor"))
			return
		}

		updated := existing
		updated.Name = strings.TrimSpace(payload.Name)
		updated.Description = payload.Description
		updated.Price = *payload.Price
		updated.Category = category
		updated.Stock = payload.Stock
		if payload.Image != "" {
			updated.Image = payload.Image
		}

		if !s.UpdateProduct(updated) {
			responses.WriteSuccess(w, types.MutationResult{Found: false})
			return
		}
		responses.WriteSuccess(w, updateProductResponse{MutationResult: types.MutationResult{Found: true}, Product: updated})
	}
}

// VendorDeleteProduct removes a listing. Unknown ids report found=false.
func VendorDeleteProduct(vendorID string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}

		id := chi.URLParam(r, "productId")
		if existing, ok := s.Product(id); ok && existing.VendorID != vendorID {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "listing belongs to another vendor"))
			return
		}
		responses.WriteSuccess(w, types.MutationResult{Found: s.DeleteProduct(id)})
	}
}

// VendorDescribe generates marketing copy for a listing draft. It always answers 200;
// failures come back as fallback text with generated=false.
func VendorDescribe(svc describer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload describeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if svc == nil {
			responses.WriteSuccess(w, describe.Result{Text: describe.FallbackFailed})
			return
		}
		responses.WriteSuccess(w, svc.Describe(r.Context(), strings.TrimSpace(payload.Name), payload.Category))
	}
}
