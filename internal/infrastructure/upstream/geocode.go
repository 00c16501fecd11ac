package upstream

import (
	"context"
	"net/url"

	"github.com/dinequickly/costco-programatic/internal/domain/warehouse"
)

// Geocoder resolves postal codes via the geocoding API.
type Geocoder struct {
	client *Client
}

// NewGeocoder creates a geocoding client.
func NewGeocoder(client *Client) *Geocoder {
	return &Geocoder{client: client}
}

type geocodeCandidate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocode returns coordinate candidates for zipCode in upstream order.
func (g *Geocoder) Geocode(ctx context.Context, zipCode string) ([]warehouse.Coordinates, error) {
	var body []geocodeCandidate
	params := url.Values{"q": {zipCode}}
	if err := g.client.getJSON(ctx, NameGeocode, g.client.cfg.GeocodeURL, params, &body); err != nil {
		return nil, err
	}

	out := make([]warehouse.Coordinates, 0, len(body))
	for _, c := range body {
		out = append(out, warehouse.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude})
	}
	return out, nil
}

var _ warehouse.Geocoder = (*Geocoder)(nil)
