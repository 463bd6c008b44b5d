package geocache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cargotracker/internal/adapters/out/geocache"
	"cargotracker/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func santosResult() *ports.GeocodeResult {
	return &ports.GeocodeResult{
		Lat:         -23.9608,
		Lng:         -46.3336,
		DisplayName: "Porto de Santos, Santos, São Paulo, Brasil",
		City:        "Santos",
		Country:     "Brasil",
	}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := geocache.NewMemoryCache(10)
	ctx := context.Background()

	cache.Set(ctx, "Porto de Santos", santosResult(), time.Hour)

	result, ok := cache.Get(ctx, "Porto de Santos")
	require.True(t, ok)
	assert.Equal(t, santosResult(), result)
}

func TestMemoryCache_MissOnUnknownAddress(t *testing.T) {
	cache := geocache.NewMemoryCache(10)

	result, ok := cache.Get(context.Background(), "Endereço desconhecido")
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestMemoryCache_ExpiredEntryIsAMiss(t *testing.T) {
	cache := geocache.NewMemoryCache(10)
	ctx := context.Background()

	cache.Set(ctx, "Porto de Santos", santosResult(), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get(ctx, "Porto de Santos")
	assert.False(t, ok)
	assert.Zero(t, cache.Len(), "expired entry should be dropped on read")
}

func TestMemoryCache_SetReplacesExistingEntry(t *testing.T) {
	cache := geocache.NewMemoryCache(10)
	ctx := context.Background()

	cache.Set(ctx, "Porto de Santos", &ports.GeocodeResult{City: "old"}, time.Hour)
	cache.Set(ctx, "Porto de Santos", santosResult(), time.Hour)

	result, ok := cache.Get(ctx, "Porto de Santos")
	require.True(t, ok)
	assert.Equal(t, "Santos", result.City)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_NilResultAndZeroTTLIgnored(t *testing.T) {
	cache := geocache.NewMemoryCache(10)
	ctx := context.Background()

	cache.Set(ctx, "a", nil, time.Hour)
	cache.Set(ctx, "b", santosResult(), 0)

	assert.Zero(t, cache.Len())
}

func TestMemoryCache_BoundedSize(t *testing.T) {
	cache := geocache.NewMemoryCache(3)
	ctx := context.Background()

	for i := range 5 {
		cache.Set(ctx, fmt.Sprintf("endereço %d", i), santosResult(), time.Hour)
	}

	assert.LessOrEqual(t, cache.Len(), 3)
}

func TestMemoryCache_Sweep(t *testing.T) {
	cache := geocache.NewMemoryCache(10)
	ctx := context.Background()

	cache.Set(ctx, "fresh", santosResult(), time.Hour)
	cache.Set(ctx, "stale-1", santosResult(), time.Nanosecond)
	cache.Set(ctx, "stale-2", santosResult(), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	removed := cache.Sweep()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, cache.Len())

	_, ok := cache.Get(ctx, "fresh")
	assert.True(t, ok)
}

func TestMemoryCache_SweepOnEmptyCache(t *testing.T) {
	cache := geocache.NewMemoryCache(10)
	assert.Zero(t, cache.Sweep())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := geocache.NewMemoryCache(100)
	ctx := context.Background()

	done := make(chan struct{})
	for w := range 4 {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			for i := range 50 {
				address := fmt.Sprintf("endereço %d-%d", w, i)
				cache.Set(ctx, address, santosResult(), time.Hour)
				cache.Get(ctx, address)
			}
		}(w)
	}

	for range 4 {
		<-done
	}

	assert.LessOrEqual(t, cache.Len(), 100)
}
