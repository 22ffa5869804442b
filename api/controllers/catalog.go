package controllers

import (
	"context"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/swiftmarket-backend/api/responses"
	"github.com/angelmondragon/swiftmarket-backend/api/validators"
	"github.com/angelmondragon/swiftmarket-backend/internal/store"
	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmarket-backend/pkg/errors"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
	"github.com/angelmondragon/swiftmarket-backend/pkg/pagination"
)

const maxSearchLength = 200

type suggester interface {
	Suggest(ctx context.Context, query string) []string
}

type catalogResponse struct {
	Products   []models.Product `json:"products"`
	Count      int              `json:"count"`
	Sort       enums.SortMode   `json:"sort"`
	Filter     store.Filter     `json:"filter"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

type setFilterRequest struct {
	SearchQuery      *string `json:"search_query,omitempty"`
	SelectedCategory *string `json:"selected_category,omitempty"`
}

// CatalogList returns the filtered catalog ordered by ?sort=. Passing ?limit= or ?cursor=
// switches to paged output; count is always the full visible total.
func CatalogList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		mode, err := validators.ParseQueryEnum(r, "sort", enums.ParseSortMode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		resp := listCatalog(s, mode)

		query := r.URL.Query()
		if !query.Has("limit") && !query.Has("cursor") {
			responses.WriteSuccess(w, resp)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := pagination.Apply(resp.Products, pagination.Params{Limit: limit, Cursor: query.Get("cursor")})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor").
				WithDetails(map[string]any{"field": "cursor"}))
			return
		}
		resp.Products = page.Items
		resp.NextCursor = page.NextCursor
		responses.WriteSuccess(w, resp)
	}
}

// CatalogCategories lists the category filter options, All first.
func CatalogCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, enums.FilterCategories())
	}
}

// CatalogSuggestions returns related search terms for ?q=.
func CatalogSuggestions(svc suggester, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := validators.SanitizeString(r.URL.Query().Get("q"), maxSearchLength)
		terms := []string{}
		if svc != nil {
			terms = svc.Suggest(r.Context(), query)
		}
		responses.WriteSuccess(w, map[string]any{"query": query, "suggestions": terms})
	}
}

// CatalogSetFilter replaces the search text and/or category selection and returns the
// resulting catalog view.
func CatalogSetFilter(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}

		var payload setFilterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.SelectedCategory != nil && !slices.Contains(enums.FilterCategories(), *payload.SelectedCategory) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown category").
				WithDetails(map[string]any{"selected_category": *payload.SelectedCategory, "allowed": enums.FilterCategories()}))
			return
		}
		if payload.SearchQuery != nil && len(*payload.SearchQuery) > maxSearchLength {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "search query too long").
				WithDetails(map[string]any{"max": maxSearchLength}))
			return
		}

		f := s.Filter()
		if payload.SearchQuery != nil {
			f.SearchQuery = *payload.SearchQuery
		}
		if payload.SelectedCategory != nil {
			f.SelectedCategory = *payload.SelectedCategory
		}
		s.SetFilter(f)
		responses.WriteSuccess(w, listCatalog(s, enums.SortModeFeatured))
	}
}

// CatalogProduct returns one catalog entry.
func CatalogProduct(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		product, ok := s.Product(chi.URLParam(r, "productId"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func listCatalog(s *store.Store, mode enums.SortMode) catalogResponse {
	products := s.VisibleProducts(mode)
	return catalogResponse{
		Products: products,
		Count:    len(products),
		Sort:     mode,
		Filter:   s.Filter(),
	}
}
