// Package warehouse resolves the physical warehouse a product search is scoped to.
package warehouse

import "fmt"

// Placeholder metadata for warehouses addressed by an explicit id.
const (
	UnknownCity  = "Unknown"
	UnknownState = "Unknown"
)

// Warehouse is a physical retail location.
// Produced fresh per request; never cached.
type Warehouse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// NewPlaceholder returns the warehouse used when the caller names a store id
// directly. No metadata is looked up for it.
func NewPlaceholder(id string) *Warehouse {
	return &Warehouse{
		ID:    id,
		Name:  fmt.Sprintf("Store %s", id),
		City:  UnknownCity,
		State: UnknownState,
	}
}

// Coordinates is a geocoding candidate.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
