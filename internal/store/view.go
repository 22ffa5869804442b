package store

import (
	"cmp"
	"slices"
	"strings"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

// FilterProducts returns, in input order, the products whose name contains query
// case-insensitively and whose category matches category (or category is All).
// The result never aliases the input.
func FilterProducts(products []models.Product, query, category string) []models.Product {
	needle := strings.ToLower(query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if category != enums.CategoryAll && string(p.Category) != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts orders products in place and returns them. Ties keep their input order.
// Featured and unknown modes leave the input order untouched.
func SortProducts(products []models.Product, mode enums.SortMode) []models.Product {
	switch mode {
	case enums.SortModePriceAsc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case enums.SortModePriceDesc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case enums.SortModeRatingDesc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}
	return products
}
