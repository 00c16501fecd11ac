package warehouse

import (
	"context"
	"time"
)

// Geocoder turns a postal code into coordinate candidates, best match first.
type Geocoder interface {
	Geocode(ctx context.Context, zipCode string) ([]Coordinates, error)
}

// LocateQuery describes a nearest-warehouse lookup.
type LocateQuery struct {
	Coordinates Coordinates
	Limit       int
	// OpeningDate is forwarded to the locator as-is.
	OpeningDate time.Time
}

// Locator finds warehouses near a coordinate, nearest first.
type Locator interface {
	Locate(ctx context.Context, q LocateQuery) ([]Warehouse, error)
}
