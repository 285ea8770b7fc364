package ranking

import (
	"sync"
	"time"

	"github.com/epaperhq/newsrank/pkg/domain"
)

// ResultCache holds per-section ranked item lists for a fixed TTL. A disabled
// cache always misses on Get and drops Puts. Invalidation is wholesale via
// ClearAll; there is no per-section eviction.
type ResultCache struct {
	ttl     time.Duration
	enabled bool
	nowFn   func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	capturedAt time.Time
	items      []domain.Item
	summary    string
}

// NewResultCache creates a cache with the given TTL and enable flag
func NewResultCache(ttl time.Duration, enabled bool) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		enabled: enabled,
		nowFn:   time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached items and digest for a section if the entry is
// younger than the TTL and caching is enabled
func (c *ResultCache) Get(section string) ([]domain.Item, string, bool) {
	if !c.enabled {
		return nil, "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[section]
	if !ok {
		return nil, "", false
	}
	if c.nowFn().Sub(entry.capturedAt) >= c.ttl {
		return nil, "", false
	}
	return entry.items, entry.summary, true
}

// Put stores the ranked items and digest for a section, a no-op when caching
// is disabled
func (c *ResultCache) Put(section string, items []domain.Item, summary string) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[section] = cacheEntry{capturedAt: c.nowFn(), items: items, summary: summary}
}

// ClearAll drops every entry and returns how many were removed
func (c *ResultCache) ClearAll() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := len(c.entries)
	c.entries = make(map[string]cacheEntry)
	return count
}

// Stats reports the cache state
func (c *ResultCache) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.CacheStats{Entries: len(c.entries), TTL: c.ttl, Enabled: c.enabled}
}
