package store

import (
	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

// AddProduct prepends a product to the catalog.
func (s *Store) AddProduct(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]models.Product{product}, s.products...)
	s.commit(ChangeCatalog)
}

// UpdateProduct replaces the catalog entry with the same id.
// Cart lines and orders keep their snapshot.
func (s *Store) UpdateProduct(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.productIndex(product.ID)
	if idx < 0 {
		return false
	}
	s.products[idx] = product
	s.commit(ChangeCatalog)
	return true
}

// DeleteProduct removes the catalog entry with the given id.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.productIndex(id)
	if idx < 0 {
		return false
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.commit(ChangeCatalog)
	return true
}

// Products returns a copy of the catalog in catalog order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

// Product looks up a catalog entry by id.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.productIndex(id); idx >= 0 {
		return s.products[idx], true
	}
	return models.Product{}, false
}

// VendorProducts returns the catalog entries owned by vendorID, in catalog order.
func (s *Store) VendorProducts(vendorID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out
}

// VisibleProducts applies the session filter to the catalog and orders the result.
func (s *Store) VisibleProducts(mode enums.SortMode) []models.Product {
	s.mu.RLock()
	filtered := FilterProducts(s.products, s.filter.SearchQuery, s.filter.SelectedCategory)
	s.mu.RUnlock()
	return SortProducts(filtered, mode)
}

func (s *Store) productIndex(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
