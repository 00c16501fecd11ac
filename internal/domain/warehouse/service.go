package warehouse

import (
	"context"
	"strings"
	"time"

	"github.com/dinequickly/costco-programatic/internal/core/apperror"
	"github.com/dinequickly/costco-programatic/pkg/logger"
)

// Not-found messages surfaced to clients verbatim.
const (
	MsgZipNotFound       = "zip code not found"
	MsgNoWarehousesFound = "no warehouses found"
)

// Resolver maps a postal code or an explicit store id to a Warehouse.
type Resolver struct {
	geocoder Geocoder
	locator  Locator
	now      func() time.Time
}

// NewResolver creates a new warehouse resolver.
func NewResolver(geocoder Geocoder, locator Locator) *Resolver {
	return &Resolver{
		geocoder: geocoder,
		locator:  locator,
		now:      time.Now,
	}
}

// WithClock overrides the clock used for the opening date filter.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// Resolve returns the warehouse for the request.
// An explicit warehouseID short-circuits to a placeholder without any network call.
// Otherwise the first geocoding candidate is used to look up the single nearest warehouse.
func (r *Resolver) Resolve(ctx context.Context, zipCode, warehouseID string) (*Warehouse, error) {
	log := logger.FromContext(ctx).WithComponent("warehouse")

	if id := strings.TrimSpace(warehouseID); id != "" {
		log.Debugw("using explicit warehouse id", "warehouse_id", id)
		return NewPlaceholder(id), nil
	}

	candidates, err := r.geocoder.Geocode(ctx, zipCode)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperror.NewNotFound(MsgZipNotFound).WithDetail("zip_code", zipCode)
	}
	coords := candidates[0]

	warehouses, err := r.locator.Locate(ctx, LocateQuery{
		Coordinates: coords,
		Limit:       1,
		OpeningDate: r.now(),
	})
	if err != nil {
		return nil, err
	}
	if len(warehouses) == 0 {
		return nil, apperror.NewNotFound(MsgNoWarehousesFound).
			WithDetail("latitude", coords.Latitude).
			WithDetail("longitude", coords.Longitude)
	}

	wh := warehouses[0]
	log.Debugw("warehouse resolved",
		"zip_code", zipCode,
		"warehouse_id", wh.ID,
		"city", wh.City,
	)
	return &wh, nil
}
