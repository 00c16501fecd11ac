// Package item describes products returned by a warehouse-scoped search.
package item

import (
	"github.com/dinequickly/costco-programatic/internal/core/types"
)

// Item is one search result row.
// Availability and DeliveryEligibility are passed through from upstream untouched.
type Item struct {
	Name                string      `json:"name"`
	Price               types.Price `json:"price"`
	Availability        any         `json:"availability"`
	DeliveryEligibility any         `json:"deliveryEligibility"`
	PartNumber          string      `json:"partNumber"`
}
