package dto

import (
	"time"

	"github.com/dinequickly/costco-programatic/internal/domain/availability"
	"github.com/dinequickly/costco-programatic/internal/domain/item"
	"github.com/dinequickly/costco-programatic/internal/domain/warehouse"
)

// --- Request DTOs ---

// SearchRequest is the JSON body of POST /api/costco.
type SearchRequest struct {
	Keyword     string `json:"keyword"`
	ZipCode     string `json:"zipCode"`
	Limit       int    `json:"limit"`
	WarehouseID string `json:"warehouseId"`
}

// ToDomain converts DTO to the workflow request.
func (r SearchRequest) ToDomain() availability.SearchRequest {
	return availability.SearchRequest{
		Keyword:     r.Keyword,
		ZipCode:     r.ZipCode,
		Limit:       r.Limit,
		WarehouseID: r.WarehouseID,
	}
}

// --- Response DTOs ---

// SearchOutputs holds the workflow result.
type SearchOutputs struct {
	Warehouse *warehouse.Warehouse `json:"warehouse"`
	Items     []item.Item          `json:"items"`
}

// SearchResponse is the success envelope of the search endpoints.
type SearchResponse struct {
	Success  bool          `json:"success"`
	Duration string        `json:"duration"`
	Outputs  SearchOutputs `json:"outputs"`
}

// NewSearchResponse creates the success envelope.
func NewSearchResponse(res *availability.Result, elapsed time.Duration) SearchResponse {
	return SearchResponse{
		Success:  true,
		Duration: FormatDuration(elapsed),
		Outputs: SearchOutputs{
			Warehouse: res.Warehouse,
			Items:     res.Items,
		},
	}
}
