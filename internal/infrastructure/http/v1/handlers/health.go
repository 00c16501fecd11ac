// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dinequickly/costco-programatic/internal/domain/availability"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/http/v1/dto"
)

// ServiceName identifies this service in health and description documents.
const ServiceName = "costco-item-availability"

// TimestampLayout is ISO 8601 with fixed millisecond precision,
// e.g. "2026-10-18T09:00:00.000Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler provides the liveness endpoint and the service description.
type HealthHandler struct {
	version  string
	defaults *availability.DefaultsStore
	now      func() time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(version string, defaults *availability.DefaultsStore) *HealthHandler {
	return &HealthHandler{
		version:  version,
		defaults: defaults,
		now:      time.Now,
	}
}

// Health reports that the process is up.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Service:   ServiceName,
		Timestamp: h.now().UTC().Format(TimestampLayout),
	})
}

// Describe returns the static service description.
// GET /
func (h *HealthHandler) Describe(c *gin.Context) {
	searchParams := []string{"keyword", "zipCode", "limit", "warehouseId"}

	c.JSON(http.StatusOK, dto.ServiceDescription{
		Service:     ServiceName,
		Version:     h.version,
		Description: "Searches products in the nearest Costco warehouse and reports price and availability.",
		Endpoints: []dto.EndpointDoc{
			{Method: http.MethodGet, Path: "/api/costco", Description: "Search items using query parameters", Parameters: searchParams},
			{Method: http.MethodPost, Path: "/api/costco", Description: "Search items using a JSON body", Parameters: searchParams},
			{Method: http.MethodGet, Path: "/api/config", Description: "Show the default search parameters"},
			{Method: http.MethodPost, Path: "/api/config", Description: "Update any subset of the default search parameters", Parameters: searchParams},
			{Method: http.MethodGet, Path: "/health", Description: "Liveness check"},
			{Method: http.MethodGet, Path: "/metrics", Description: "Prometheus metrics"},
		},
		Defaults: dto.FromDefaults(h.defaults.Get()),
	})
}
