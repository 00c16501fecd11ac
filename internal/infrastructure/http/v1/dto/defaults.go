package dto

import "github.com/dinequickly/costco-programatic/internal/domain/availability"

// UpdateDefaultsRequest is the body of POST /api/config.
// Omitted fields are left unchanged.
type UpdateDefaultsRequest struct {
	Keyword     *string `json:"keyword"`
	ZipCode     *string `json:"zipCode"`
	Limit       *int    `json:"limit"`
	WarehouseID *string `json:"warehouseId"`
}

// ToPatch converts DTO to a defaults patch.
func (r UpdateDefaultsRequest) ToPatch() availability.DefaultsPatch {
	return availability.DefaultsPatch{
		Keyword:     r.Keyword,
		ZipCode:     r.ZipCode,
		Limit:       r.Limit,
		WarehouseID: r.WarehouseID,
	}
}

// DefaultsDTO is the wire form of the process defaults.
type DefaultsDTO struct {
	Keyword     string `json:"keyword"`
	ZipCode     string `json:"zipCode"`
	Limit       int    `json:"limit"`
	WarehouseID string `json:"warehouseId"`
}

// FromDefaults creates response DTO from the defaults record.
func FromDefaults(d availability.Defaults) DefaultsDTO {
	return DefaultsDTO{
		Keyword:     d.Keyword,
		ZipCode:     d.ZipCode,
		Limit:       d.Limit,
		WarehouseID: d.WarehouseID,
	}
}

// DefaultsResponse is returned by the config endpoints.
type DefaultsResponse struct {
	Success bool        `json:"success"`
	Config  DefaultsDTO `json:"config"`
}
