package item

import "context"

// Query describes one page of a warehouse-scoped search.
type Query struct {
	WarehouseID string
	Keyword     string
	Limit       int
}

// Searcher queries the search backend.
// Results keep upstream relevance order and hold at most q.Limit entries.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]Item, error)
}

// Truncate caps items at limit without reordering.
func Truncate(items []Item, limit int) []Item {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
