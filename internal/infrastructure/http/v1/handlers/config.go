package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dinequickly/costco-programatic/internal/domain/availability"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/http/v1/dto"
	"github.com/dinequickly/costco-programatic/pkg/logger"
)

// ConfigHandler reads and updates the process defaults.
type ConfigHandler struct {
	*BaseHandler
	defaults *availability.DefaultsStore
}

// NewConfigHandler creates a new defaults handler.
func NewConfigHandler(base *BaseHandler, defaults *availability.DefaultsStore) *ConfigHandler {
	return &ConfigHandler{BaseHandler: base, defaults: defaults}
}

// RegisterRoutes registers the config routes on rg.
func (h *ConfigHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/config", h.Get)
	rg.POST("/config", h.Update)
}

// Get handles GET /api/config.
func (h *ConfigHandler) Get(c *gin.Context) {
	h.OK(c, dto.DefaultsResponse{Success: true, Config: dto.FromDefaults(h.defaults.Get())})
}

// Update handles POST /api/config. Only supplied fields are overwritten.
func (h *ConfigHandler) Update(c *gin.Context) {
	var req dto.UpdateDefaultsRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}

	patch := req.ToPatch()
	if patch.IsEmpty() {
		h.OK(c, dto.DefaultsResponse{Success: true, Config: dto.FromDefaults(h.defaults.Get())})
		return
	}

	updated, err := h.defaults.Update(patch)
	if err != nil {
		h.Error(c, err)
		return
	}

	logger.Info(c.Request.Context(), "defaults updated",
		"keyword", updated.Keyword,
		"zip_code", updated.ZipCode,
		"limit", updated.Limit,
		"warehouse_id", updated.WarehouseID,
	)
	h.OK(c, dto.DefaultsResponse{Success: true, Config: dto.FromDefaults(updated)})
}
