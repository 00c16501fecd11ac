package availability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinequickly/costco-programatic/internal/core/apperror"
)

func ptr[T any](v T) *T { return &v }

func TestNewDefaultsStore_FillsLimit(t *testing.T) {
	s := NewDefaultsStore(Defaults{Keyword: "juice"})
	assert.Equal(t, DefaultLimit, s.Get().Limit)
}

func TestDefaultsStore_PartialUpdate(t *testing.T) {
	s := NewDefaultsStore(Defaults{Keyword: "water", ZipCode: "98101", Limit: 24, WarehouseID: "115"})

	got, err := s.Update(DefaultsPatch{Limit: ptr(10)})
	require.NoError(t, err)

	assert.Equal(t, Defaults{Keyword: "water", ZipCode: "98101", Limit: 10, WarehouseID: "115"}, got)
	assert.Equal(t, got, s.Get())
}

func TestDefaultsStore_UpdateIsIdempotent(t *testing.T) {
	patch := DefaultsPatch{Keyword: ptr("coffee"), WarehouseID: ptr("")}

	once := NewDefaultsStore(Defaults{Keyword: "water", ZipCode: "98101", WarehouseID: "115"})
	_, err := once.Update(patch)
	require.NoError(t, err)

	twice := NewDefaultsStore(Defaults{Keyword: "water", ZipCode: "98101", WarehouseID: "115"})
	_, err = twice.Update(patch)
	require.NoError(t, err)
	_, err = twice.Update(patch)
	require.NoError(t, err)

	assert.Equal(t, once.Get(), twice.Get())
	assert.Equal(t, "", twice.Get().WarehouseID)
}

func TestDefaultsStore_RejectsNonPositiveLimit(t *testing.T) {
	s := NewDefaultsStore(Defaults{Limit: 24})

	got, err := s.Update(DefaultsPatch{Keyword: ptr("tea"), Limit: ptr(0)})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, 24, got.Limit)
	assert.Equal(t, "", s.Get().Keyword)
}

func TestDefaultsStore_ConcurrentAccess(t *testing.T) {
	s := NewDefaultsStore(Defaults{})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = s.Update(DefaultsPatch{Limit: ptr(n)})
		}(i)
		go func() {
			defer wg.Done()
			assert.Positive(t, s.Get().Limit)
		}()
	}
	wg.Wait()
}

func TestDefaultsPatch_IsEmpty(t *testing.T) {
	assert.True(t, DefaultsPatch{}.IsEmpty())
	assert.False(t, DefaultsPatch{ZipCode: ptr("1")}.IsEmpty())
}
