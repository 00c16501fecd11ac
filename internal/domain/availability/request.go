package availability

import (
	"strings"

	"github.com/dinequickly/costco-programatic/internal/core/apperror"
)

// SearchRequest is one incoming search. Zero-valued fields fall back to defaults.
type SearchRequest struct {
	Keyword     string
	ZipCode     string
	Limit       int
	WarehouseID string
}

// Merge fills every empty or non-positive field from d. Request fields win.
func (r SearchRequest) Merge(d Defaults) SearchRequest {
	out := r
	if strings.TrimSpace(out.Keyword) == "" {
		out.Keyword = d.Keyword
	}
	if strings.TrimSpace(out.ZipCode) == "" {
		out.ZipCode = d.ZipCode
	}
	if out.Limit <= 0 {
		out.Limit = d.Limit
	}
	if out.Limit <= 0 {
		out.Limit = DefaultLimit
	}
	if strings.TrimSpace(out.WarehouseID) == "" {
		out.WarehouseID = d.WarehouseID
	}
	out.Keyword = strings.TrimSpace(out.Keyword)
	out.ZipCode = strings.TrimSpace(out.ZipCode)
	out.WarehouseID = strings.TrimSpace(out.WarehouseID)
	return out
}

// Validate checks a merged request before any upstream call.
func (r SearchRequest) Validate() error {
	if r.Keyword == "" {
		return apperror.NewValidation("keyword is required")
	}
	if r.ZipCode == "" && r.WarehouseID == "" {
		return apperror.NewValidation("zipCode or warehouseId is required")
	}
	return nil
}
