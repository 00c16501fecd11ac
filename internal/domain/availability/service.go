package availability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/dinequickly/costco-programatic/internal/domain/item"
	"github.com/dinequickly/costco-programatic/internal/domain/warehouse"
	"github.com/dinequickly/costco-programatic/pkg/logger"
)

var tracer = otel.Tracer("costco/availability")

// WarehouseResolver resolves the warehouse a search is scoped to.
type WarehouseResolver interface {
	Resolve(ctx context.Context, zipCode, warehouseID string) (*warehouse.Warehouse, error)
}

// Result is the workflow output.
type Result struct {
	Warehouse *warehouse.Warehouse `json:"warehouse"`
	Items     []item.Item          `json:"items"`
}

// Service runs the two-stage search: resolve a warehouse, then search within it.
type Service struct {
	resolver WarehouseResolver
	searcher item.Searcher
	defaults *DefaultsStore
}

// NewService creates a new availability service.
func NewService(resolver WarehouseResolver, searcher item.Searcher, defaults *DefaultsStore) *Service {
	return &Service{
		resolver: resolver,
		searcher: searcher,
		defaults: defaults,
	}
}

// Defaults exposes the store the service merges requests against.
func (s *Service) Defaults() *DefaultsStore {
	return s.defaults
}

// Search merges req with the current defaults and runs the workflow.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*Result, error) {
	merged := req.Merge(s.defaults.Get())
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "availability.Search")
	defer span.End()
	span.SetAttributes(
		attribute.String("search.keyword", merged.Keyword),
		attribute.String("search.zip_code", merged.ZipCode),
		attribute.Int("search.limit", merged.Limit),
		attribute.String("search.warehouse_id", merged.WarehouseID),
	)

	wh, err := s.resolver.Resolve(ctx, merged.ZipCode, merged.WarehouseID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve warehouse")
		return nil, err
	}

	items, err := s.searcher.Search(ctx, item.Query{
		WarehouseID: wh.ID,
		Keyword:     merged.Keyword,
		Limit:       merged.Limit,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search items")
		return nil, err
	}
	items = item.Truncate(items, merged.Limit)
	if items == nil {
		items = []item.Item{}
	}

	logger.FromContext(ctx).WithComponent("availability").Infow("search completed",
		"keyword", merged.Keyword,
		"warehouse_id", wh.ID,
		"items", len(items),
	)

	return &Result{Warehouse: wh, Items: items}, nil
}
