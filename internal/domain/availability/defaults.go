// Package availability implements the warehouse-scoped product search workflow.
package availability

import (
	"sync"

	"github.com/dinequickly/costco-programatic/internal/core/apperror"
)

// DefaultLimit is the result limit used when neither the request nor the
// configured defaults supply one.
const DefaultLimit = 24

// Defaults are the fallback values applied to fields a request omits.
type Defaults struct {
	Keyword     string `json:"keyword"`
	ZipCode     string `json:"zipCode"`
	Limit       int    `json:"limit"`
	WarehouseID string `json:"warehouseId"`
}

// DefaultsPatch is a partial update. Nil fields are left unchanged.
type DefaultsPatch struct {
	Keyword     *string
	ZipCode     *string
	Limit       *int
	WarehouseID *string
}

// IsEmpty reports whether the patch supplies no field.
func (p DefaultsPatch) IsEmpty() bool {
	return p.Keyword == nil && p.ZipCode == nil && p.Limit == nil && p.WarehouseID == nil
}

// DefaultsStore owns the process defaults. It is created once at startup and
// injected into handlers; updates are whole-record under a lock so readers
// always see a consistent snapshot.
type DefaultsStore struct {
	mu       sync.RWMutex
	defaults Defaults
}

// NewDefaultsStore creates a store seeded with initial values.
// A non-positive limit is replaced by DefaultLimit.
func NewDefaultsStore(initial Defaults) *DefaultsStore {
	if initial.Limit <= 0 {
		initial.Limit = DefaultLimit
	}
	return &DefaultsStore{defaults: initial}
}

// Get returns a copy of the current defaults.
func (s *DefaultsStore) Get() Defaults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaults
}

// Update overwrites only the supplied fields and returns the resulting defaults.
// Applying the same patch twice yields the same state as applying it once.
func (s *DefaultsStore) Update(p DefaultsPatch) (Defaults, error) {
	if p.Limit != nil && *p.Limit <= 0 {
		return s.Get(), apperror.NewValidation("limit must be a positive integer").
			WithDetail("limit", *p.Limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Keyword != nil {
		s.defaults.Keyword = *p.Keyword
	}
	if p.ZipCode != nil {
		s.defaults.ZipCode = *p.ZipCode
	}
	if p.Limit != nil {
		s.defaults.Limit = *p.Limit
	}
	if p.WarehouseID != nil {
		s.defaults.WarehouseID = *p.WarehouseID
	}
	return s.defaults, nil
}
