package infrastructure

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czdtech/planetary-hours/internal/application"
)

func TestMemoryCacheGetSetClear(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Get("2025-06-14|40.7128|-74.0060|America/New_York")
	assert.False(t, ok)

	result := &application.CalculationResult{Date: "2025-06-14"}
	cache.Set("k", result)

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Same(t, result, got)

	cache.Clear()
	_, ok = cache.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%4)
			for j := 0; j < 200; j++ {
				cache.Set(key, &application.CalculationResult{Date: key})
				if got, ok := cache.Get(key); ok {
					assert.Equal(t, key, got.Date)
				}
				if j%50 == 0 {
					cache.Clear()
				}
			}
		}(i)
	}
	wg.Wait()
}
