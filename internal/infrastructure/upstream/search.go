package upstream

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/dinequickly/costco-programatic/internal/core/types"
	"github.com/dinequickly/costco-programatic/internal/domain/item"
	"github.com/dinequickly/costco-programatic/pkg/logger"
)

// DefaultLocale is the only locale the search backend is queried with.
const DefaultLocale = "en-US"

// DefaultSearchFilter restricts results to items fulfillable in the warehouse.
const DefaultSearchFilter = `{!tag=item_program_eligibility}item_program_eligibility:("InWarehouse")`

// warehouseScope is the suffix the search backend expects on warehouse ids.
const warehouseScope = "-wh"

// Searcher queries the product search API.
type Searcher struct {
	client *Client
}

// NewSearcher creates a search client.
func NewSearcher(client *Client) *Searcher {
	return &Searcher{client: client}
}

type searchResponse struct {
	Response struct {
		Docs []searchDoc `json:"docs"`
	} `json:"response"`
}

// searchDoc is the single translation point between the upstream document
// schema and item.Item.
//
//	item_product_name               -> Name
//	item_location_pricing_salePrice -> Price
//	item_location_availability      -> Availability
//	item_program_eligibility        -> DeliveryEligibility
//	item_partnumber                 -> PartNumber
type searchDoc struct {
	ProductName  string          `json:"item_product_name"`
	SalePrice    json.RawMessage `json:"item_location_pricing_salePrice"`
	Availability json.RawMessage `json:"item_location_availability"`
	Eligibility  json.RawMessage `json:"item_program_eligibility"`
	PartNumber   flexString      `json:"item_partnumber"`
}

// toItem never fails: a price that does not parse is reported as unset and
// the rest of the document is kept.
func (d searchDoc) toItem(ctx context.Context) item.Item {
	price, err := types.ParsePrice(d.SalePrice)
	if err != nil {
		logger.FromContext(ctx).WithComponent(component).Debugw("unparsable sale price",
			"part_number", string(d.PartNumber),
			"raw", string(d.SalePrice),
		)
	}

	return item.Item{
		Name:                d.ProductName,
		Price:               price,
		Availability:        opaque(d.Availability),
		DeliveryEligibility: opaque(d.Eligibility),
		PartNumber:          string(d.PartNumber),
	}
}

// opaque keeps a raw upstream value as-is, or nil when absent.
func opaque(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}

// Scope returns the warehouse scoping value for id, e.g. "123-wh".
func Scope(warehouseID string) string {
	return warehouseID + warehouseScope
}

// Search runs a single-page query scoped to q.WarehouseID.
func (s *Searcher) Search(ctx context.Context, q item.Query) ([]item.Item, error) {
	scope := Scope(q.WarehouseID)
	params := url.Values{
		"q":      {q.Keyword},
		"locale": {s.client.cfg.Locale},
		"start":  {"0"},
		"rows":   {strconv.Itoa(q.Limit)},
		"loc":    {scope},
		"whloc":  {scope},
		"fq":     {s.client.cfg.SearchFilter},
	}

	var body searchResponse
	if err := s.client.getJSON(ctx, NameSearch, s.client.cfg.SearchURL, params, &body); err != nil {
		return nil, err
	}

	items := make([]item.Item, 0, len(body.Response.Docs))
	for _, d := range body.Response.Docs {
		items = append(items, d.toItem(ctx))
	}
	return item.Truncate(items, q.Limit), nil
}

var _ item.Searcher = (*Searcher)(nil)
