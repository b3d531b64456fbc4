package mimesniff

import (
	"bytes"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// CacheStatistics contains cache performance metrics.
type CacheStatistics struct {
	Hits      int64
	Misses    int64
	Size      int64
	Evictions int64
	HitRate   float64
}

// cacheEntry keeps the window so fingerprint collisions can be told apart.
type cacheEntry struct {
	window []byte
	label  string
}

// CachedDetector memoizes detection results keyed by an xxhash fingerprint
// of the sniffing window. It is safe for concurrent use.
type CachedDetector struct {
	reg        *Registry
	maxEntries int

	mu        sync.RWMutex
	entries   map[uint64]cacheEntry
	hits      int64
	misses    int64
	evictions int64
}

// NewCachedDetector creates a cached detector over reg holding at most
// maxEntries results. A nil reg uses the default registry; maxEntries <= 0
// disables caching.
func NewCachedDetector(reg *Registry, maxEntries int) *CachedDetector {
	if reg == nil {
		reg = Default()
	}
	return &CachedDetector{
		reg:        reg,
		maxEntries: maxEntries,
		entries:    make(map[uint64]cacheEntry),
	}
}

// Detect returns the content type of data, as [Registry.Detect] would.
func (c *CachedDetector) Detect(data []byte) string {
	if c.maxEntries <= 0 {
		return c.reg.Detect(data)
	}

	data = window(data)
	key := xxhash.Sum64(data)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && bytes.Equal(entry.window, data) {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return entry.label
	}

	ct := c.reg.Detect(data)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOne()
	}
	c.entries[key] = cacheEntry{
		window: append([]byte(nil), data...),
		label:  ct,
	}
	return ct
}

// evictOne removes an arbitrary entry. Must be called with mu held.
func (c *CachedDetector) evictOne() {
	for k := range c.entries {
		delete(c.entries, k)
		c.evictions++
		return
	}
}

// Stats returns cache statistics.
func (c *CachedDetector) Stats() CacheStatistics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return CacheStatistics{
		Hits:      c.hits,
		Misses:    c.misses,
		Size:      int64(len(c.entries)),
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}

// Clear removes all cached results. Statistics are kept.
func (c *CachedDetector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]cacheEntry)
}
