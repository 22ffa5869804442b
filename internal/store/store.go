package store

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmarket-backend/pkg/errors"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

// Recorder receives counts for cart mutations and placed orders.
type Recorder interface {
	CartMutation(op string)
	OrderPlaced(total decimal.Decimal)
}

// Filter is the catalog filter state of a session.
type Filter struct {
	SearchQuery      string `json:"search_query"`
	SelectedCategory string `json:"selected_category"`
}

// Options configures a new Store.
type Options struct {
	Products   []models.Product
	User       models.User
	Recorder   Recorder
	Now        func() time.Time
	NewOrderID func() string
}

// Store holds the catalog, cart, user, order history and filter state of one session.
// All methods are safe for concurrent use; a write completes before any later read observes state.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	cart     []models.CartItem
	user     models.User
	orders   []models.Order
	filter   Filter
	version  uint64

	recorder   Recorder
	nowFn      func() time.Time
	newOrderID func() string

	subs subscribers
}

// New builds a Store seeded with the given catalog and user.
func New(opts Options) *Store {
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newOrderID := opts.NewOrderID
	if newOrderID == nil {
		newOrderID = NewOrderID
	}
	user := opts.User
	if user.Role == "" {
		user.Role = enums.UserRoleCustomer
	}
	return &Store{
		products:   cloneProducts(opts.Products),
		cart:       []models.CartItem{},
		user:       user,
		orders:     []models.Order{},
		filter:     Filter{SelectedCategory: enums.CategoryAll},
		recorder:   opts.Recorder,
		nowFn:      nowFn,
		newOrderID: newOrderID,
	}
}

// SetUserRole replaces the session user's role.
func (s *Store) SetUserRole(role enums.UserRole) error {
	if !role.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid user role").
			WithDetails(map[string]any{"role": string(role), "allowed": enums.UserRoles()})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Role = role
	s.commit(ChangeUser)
	return nil
}

// SetSearchQuery replaces the search text verbatim.
func (s *Store) SetSearchQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SearchQuery = text
	s.commit(ChangeFilter)
}

// SetSelectedCategory replaces the category selection verbatim.
func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SelectedCategory = category
	s.commit(ChangeFilter)
}

// SetFilter replaces search text and category together as a single change.
func (s *Store) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
	s.commit(ChangeFilter)
}

// User returns the session user.
func (s *Store) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Filter returns the current filter state.
func (s *Store) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Version returns the number of mutations applied so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Overview aggregates the catalog and order history for the admin dashboard.
func (s *Store) Overview() models.Overview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vendors := make(map[string]struct{})
	for _, p := range s.products {
		vendors[p.VendorID] = struct{}{}
	}
	out := models.Overview{
		ProductCount: len(s.products),
		VendorCount:  len(vendors),
		OrderCount:   len(s.orders),
		Revenue:      decimal.Zero,
	}
	for _, o := range s.orders {
		out.UnitsSold += o.ItemCount()
		out.Revenue = out.Revenue.Add(o.Total)
	}
	return out
}

// commit must be called with s.mu held for writing.
func (s *Store) commit(kind ChangeKind) {
	s.version++
	s.subs.publish(Change{Kind: kind, Version: s.version})
}

func (s *Store) recordCart(op string) {
	if s.recorder != nil {
		s.recorder.CartMutation(op)
	}
}

func cloneProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	copy(out, in)
	return out
}

func cloneCart(in []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(in))
	copy(out, in)
	return out
}
