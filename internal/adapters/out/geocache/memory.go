// Package geocache provides GeocodeCache implementations: a bounded
// in-memory cache for single-instance deployments and a Redis-backed cache
// for sharing resolutions across instances.
package geocache

import (
	"context"
	"sync"
	"time"

	"cargotracker/internal/core/ports"
)

// DefaultMaxEntries bounds the in-memory cache when no size is given.
const DefaultMaxEntries = 10000

type memoryEntry struct {
	result    *ports.GeocodeResult
	expiresAt time.Time
}

// MemoryCache is a bounded in-memory GeocodeCache. Expired entries are
// dropped lazily on Get and in bulk by Sweep, which the cache-maintenance
// job calls on a schedule.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	maxEntries int
}

// NewMemoryCache creates an in-memory cache holding at most maxEntries
// addresses. A non-positive maxEntries falls back to the default.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
	}
}

// Get returns the cached result for the address, or ok=false on a miss.
// An expired entry counts as a miss and is removed.
func (c *MemoryCache) Get(_ context.Context, address string) (*ports.GeocodeResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[address]
	if !ok {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		delete(c.entries, address)
		return nil, false
	}

	return entry.result, true
}

// Set stores a result for the address. When the cache is full it first drops
// expired entries; if still full, one arbitrary entry makes room.
func (c *MemoryCache) Set(_ context.Context, address string, result *ports.GeocodeResult, ttl time.Duration) {
	if result == nil || ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[address]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}

	c.entries[address] = memoryEntry{
		result:    result,
		expiresAt: time.Now().Add(ttl),
	}
}

// Sweep removes all expired entries and reports how many were dropped.
func (c *MemoryCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for address, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, address)
			removed++
		}
	}

	return removed
}

// Len reports the number of entries currently held, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictLocked drops expired entries, or one arbitrary entry when none have
// expired yet. Caller must hold the mutex.
func (c *MemoryCache) evictLocked() {
	now := time.Now()
	for address, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, address)
		}
	}

	if len(c.entries) < c.maxEntries {
		return
	}

	for address := range c.entries {
		delete(c.entries, address)
		return
	}
}
