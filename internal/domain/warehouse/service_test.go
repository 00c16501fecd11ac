package warehouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinequickly/costco-programatic/internal/core/apperror"
)

// callLog records the order in which upstreams were hit.
type callLog struct {
	calls []string
}

type mockGeocoder struct {
	log     *callLog
	results []Coordinates
	err     error
	zip     string
}

func (m *mockGeocoder) Geocode(ctx context.Context, zipCode string) ([]Coordinates, error) {
	m.log.calls = append(m.log.calls, "geocode")
	m.zip = zipCode
	return m.results, m.err
}

type mockLocator struct {
	log     *callLog
	results []Warehouse
	err     error
	query   LocateQuery
}

func (m *mockLocator) Locate(ctx context.Context, q LocateQuery) ([]Warehouse, error) {
	m.log.calls = append(m.log.calls, "locate")
	m.query = q
	return m.results, m.err
}

func newMocks() (*callLog, *mockGeocoder, *mockLocator) {
	log := &callLog{}
	return log, &mockGeocoder{log: log}, &mockLocator{log: log}
}

func TestResolve_ExplicitIDSkipsNetwork(t *testing.T) {
	log, geo, loc := newMocks()
	r := NewResolver(geo, loc)

	for _, id := range []string{"123", "1", "abc-9"} {
		wh, err := r.Resolve(context.Background(), "90210", id)
		require.NoError(t, err)
		assert.Equal(t, &Warehouse{ID: id, Name: "Store " + id, City: "Unknown", State: "Unknown"}, wh)
	}
	assert.Empty(t, log.calls)
}

func TestResolve_GeocodeThenLocate(t *testing.T) {
	log, geo, loc := newMocks()
	geo.results = []Coordinates{{Latitude: 34.1, Longitude: -118.4}, {Latitude: 1, Longitude: 2}}
	loc.results = []Warehouse{
		{ID: "123", Name: "Test Store", City: "Beverly Hills", State: "CA"},
		{ID: "456", Name: "Other", City: "LA", State: "CA"},
	}
	day := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	r := NewResolver(geo, loc).WithClock(func() time.Time { return day })

	wh, err := r.Resolve(context.Background(), "90210", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"geocode", "locate"}, log.calls)
	assert.Equal(t, "90210", geo.zip)
	assert.Equal(t, Coordinates{Latitude: 34.1, Longitude: -118.4}, loc.query.Coordinates)
	assert.Equal(t, 1, loc.query.Limit)
	assert.Equal(t, day, loc.query.OpeningDate)
	assert.Equal(t, &Warehouse{ID: "123", Name: "Test Store", City: "Beverly Hills", State: "CA"}, wh)
}

func TestResolve_EmptyGeocode(t *testing.T) {
	log, geo, loc := newMocks()
	r := NewResolver(geo, loc)

	_, err := r.Resolve(context.Background(), "00000", "")
	require.Error(t, err)

	assert.True(t, apperror.IsNotFound(err))
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "zip code not found", appErr.Message)
	assert.Equal(t, []string{"geocode"}, log.calls)
}

func TestResolve_NoWarehouses(t *testing.T) {
	_, geo, loc := newMocks()
	geo.results = []Coordinates{{Latitude: 10, Longitude: 20}}
	r := NewResolver(geo, loc)

	_, err := r.Resolve(context.Background(), "99999", "")
	require.Error(t, err)

	assert.True(t, apperror.IsNotFound(err))
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "no warehouses found", appErr.Message)
}

func TestResolve_UpstreamErrorsPropagate(t *testing.T) {
	upstreamErr := apperror.NewUpstreamLookup("geocode", 503, "down", nil)

	log, geo, loc := newMocks()
	geo.err = upstreamErr
	_, err := NewResolver(geo, loc).Resolve(context.Background(), "90210", "")
	assert.True(t, errors.Is(err, upstreamErr))
	assert.Equal(t, []string{"geocode"}, log.calls)

	_, geo, loc = newMocks()
	geo.results = []Coordinates{{Latitude: 1, Longitude: 1}}
	loc.err = apperror.NewUpstreamLookup("warehouse locator", 500, "", nil)
	_, err = NewResolver(geo, loc).Resolve(context.Background(), "90210", "")
	assert.True(t, apperror.IsUpstreamLookup(err))
}
