package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	appctx "github.com/dinequickly/costco-programatic/internal/core/context"
	"github.com/dinequickly/costco-programatic/internal/domain/availability"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/http/v1/dto"
)

// CostcoHandler serves the item availability search.
type CostcoHandler struct {
	*BaseHandler
	service *availability.Service
}

// NewCostcoHandler creates a new search handler.
func NewCostcoHandler(base *BaseHandler, service *availability.Service) *CostcoHandler {
	return &CostcoHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers the search routes on rg.
func (h *CostcoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/costco", h.SearchQuery)
	rg.POST("/costco", h.SearchBody)
}

// SearchQuery handles GET /api/costco?keyword=&zipCode=&limit=&warehouseId=
// An unparsable limit falls back to the default.
func (h *CostcoHandler) SearchQuery(c *gin.Context) {
	req := dto.SearchRequest{
		Keyword:     c.Query("keyword"),
		ZipCode:     c.Query("zipCode"),
		Limit:       h.ParseIntQuery(c, "limit", 0),
		WarehouseID: c.Query("warehouseId"),
	}
	h.search(c, req)
}

// SearchBody handles POST /api/costco with a JSON body.
func (h *CostcoHandler) SearchBody(c *gin.Context) {
	var req dto.SearchRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	h.search(c, req)
}

func (h *CostcoHandler) search(c *gin.Context, req dto.SearchRequest) {
	// Upstream calls are not aborted when the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())

	res, err := h.service.Search(ctx, req.ToDomain())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewSearchResponse(res, appctx.Elapsed(ctx)))
}
