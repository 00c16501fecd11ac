package availability

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinequickly/costco-programatic/internal/core/apperror"
	"github.com/dinequickly/costco-programatic/internal/core/types"
	"github.com/dinequickly/costco-programatic/internal/domain/item"
	"github.com/dinequickly/costco-programatic/internal/domain/warehouse"
)

type fakeResolver struct {
	wh      *warehouse.Warehouse
	err     error
	calls   int
	zip, id string
}

func (f *fakeResolver) Resolve(ctx context.Context, zipCode, warehouseID string) (*warehouse.Warehouse, error) {
	f.calls++
	f.zip, f.id = zipCode, warehouseID
	return f.wh, f.err
}

type fakeSearcher struct {
	items []item.Item
	err   error
	query item.Query
	calls int
}

func (f *fakeSearcher) Search(ctx context.Context, q item.Query) ([]item.Item, error) {
	f.calls++
	f.query = q
	return f.items, f.err
}

func makeItems(n int) []item.Item {
	items := make([]item.Item, n)
	for i := range items {
		items[i] = item.Item{Name: fmt.Sprintf("item-%d", i), PartNumber: fmt.Sprint(i), Price: types.NewPrice(float64(i))}
	}
	return items
}

func TestService_Search(t *testing.T) {
	res := &fakeResolver{wh: &warehouse.Warehouse{ID: "123", Name: "Test Store", City: "Beverly Hills", State: "CA"}}
	srch := &fakeSearcher{items: makeItems(2)}
	svc := NewService(res, srch, NewDefaultsStore(Defaults{Limit: 24}))

	out, err := svc.Search(context.Background(), SearchRequest{Keyword: "juice", ZipCode: "90210"})
	require.NoError(t, err)

	assert.Equal(t, "90210", res.zip)
	assert.Equal(t, "", res.id)
	assert.Equal(t, item.Query{WarehouseID: "123", Keyword: "juice", Limit: 24}, srch.query)
	assert.Equal(t, "123", out.Warehouse.ID)
	assert.Len(t, out.Items, 2)
}

func TestService_SearchCapsItemsAtLimit(t *testing.T) {
	res := &fakeResolver{wh: warehouse.NewPlaceholder("9")}
	srch := &fakeSearcher{items: makeItems(10)}
	svc := NewService(res, srch, NewDefaultsStore(Defaults{}))

	out, err := svc.Search(context.Background(), SearchRequest{Keyword: "juice", WarehouseID: "9", Limit: 3})
	require.NoError(t, err)

	assert.Len(t, out.Items, 3)
	assert.Equal(t, "item-0", out.Items[0].Name)
}

func TestService_SearchEmptyResultIsNotNil(t *testing.T) {
	svc := NewService(&fakeResolver{wh: warehouse.NewPlaceholder("9")}, &fakeSearcher{}, NewDefaultsStore(Defaults{}))

	out, err := svc.Search(context.Background(), SearchRequest{Keyword: "juice", WarehouseID: "9"})
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}

func TestService_SearchUsesDefaults(t *testing.T) {
	res := &fakeResolver{wh: warehouse.NewPlaceholder("115")}
	srch := &fakeSearcher{}
	svc := NewService(res, srch, NewDefaultsStore(Defaults{Keyword: "water", WarehouseID: "115", Limit: 8}))

	_, err := svc.Search(context.Background(), SearchRequest{})
	require.NoError(t, err)

	assert.Equal(t, "115", res.id)
	assert.Equal(t, item.Query{WarehouseID: "115", Keyword: "water", Limit: 8}, srch.query)
}

func TestService_SearchValidationSkipsUpstreams(t *testing.T) {
	res := &fakeResolver{}
	srch := &fakeSearcher{}
	svc := NewService(res, srch, NewDefaultsStore(Defaults{}))

	_, err := svc.Search(context.Background(), SearchRequest{ZipCode: "90210"})
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, res.calls)
	assert.Zero(t, srch.calls)
}

func TestService_SearchResolveFailureStopsWorkflow(t *testing.T) {
	res := &fakeResolver{err: apperror.NewNotFound(warehouse.MsgZipNotFound)}
	srch := &fakeSearcher{}
	svc := NewService(res, srch, NewDefaultsStore(Defaults{}))

	_, err := svc.Search(context.Background(), SearchRequest{Keyword: "juice", ZipCode: "00000"})
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, srch.calls)
}

func TestService_SearchFailurePropagates(t *testing.T) {
	res := &fakeResolver{wh: warehouse.NewPlaceholder("1")}
	srch := &fakeSearcher{err: apperror.NewUpstreamLookup("search", 500, "oops", nil)}
	svc := NewService(res, srch, NewDefaultsStore(Defaults{}))

	_, err := svc.Search(context.Background(), SearchRequest{Keyword: "juice", WarehouseID: "1"})
	assert.True(t, apperror.IsUpstreamLookup(err))
}
