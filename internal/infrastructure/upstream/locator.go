package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dinequickly/costco-programatic/internal/domain/warehouse"
)

// openingDateLayout is the calendar-date format the locator expects.
const openingDateLayout = "2006-01-02"

// Locator finds nearby warehouses via the warehouse-locator API.
type Locator struct {
	client *Client
}

// NewLocator creates a warehouse-locator client.
func NewLocator(client *Client) *Locator {
	return &Locator{client: client}
}

type locatorResponse struct {
	Warehouses []locatorWarehouse `json:"warehouses"`
}

type locatorWarehouse struct {
	WarehouseID flexString `json:"warehouseId"`
	Name        []struct {
		Value string `json:"value"`
	} `json:"name"`
	Address struct {
		City      string `json:"city"`
		Territory string `json:"territory"`
	} `json:"address"`
}

func (w locatorWarehouse) toWarehouse() warehouse.Warehouse {
	wh := warehouse.Warehouse{
		ID:    string(w.WarehouseID),
		City:  w.Address.City,
		State: w.Address.Territory,
	}
	if len(w.Name) > 0 {
		wh.Name = w.Name[0].Value
	}
	return wh
}

// Locate returns warehouses near q.Coordinates, nearest first.
func (l *Locator) Locate(ctx context.Context, q warehouse.LocateQuery) ([]warehouse.Warehouse, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 1
	}
	params := url.Values{
		"latitude":    {strconv.FormatFloat(q.Coordinates.Latitude, 'f', -1, 64)},
		"longitude":   {strconv.FormatFloat(q.Coordinates.Longitude, 'f', -1, 64)},
		"limit":       {strconv.Itoa(limit)},
		"openingDate": {q.OpeningDate.Format(openingDateLayout)},
	}

	var body locatorResponse
	if err := l.client.getJSON(ctx, NameLocator, l.client.cfg.LocatorURL, params, &body); err != nil {
		return nil, err
	}

	out := make([]warehouse.Warehouse, 0, len(body.Warehouses))
	for _, w := range body.Warehouses {
		out = append(out, w.toWarehouse())
	}
	return out, nil
}

var _ warehouse.Locator = (*Locator)(nil)
