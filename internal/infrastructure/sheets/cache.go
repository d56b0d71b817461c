package sheets

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a process-wide TTL cache for decoded sheet payloads. Entries are
// refreshed by overwrite when their window expires; there is no eviction or
// invalidation API, and key cardinality is bounded by the table count.
//
// Concurrent misses on one key collapse into a single fetch.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry

	flight singleflight.Group
}

type cacheEntry struct {
	rows     []Record
	storedAt time.Time
}

// NewCache builds a cache with the given TTL. The clock is injectable for
// tests; pass nil to use time.Now.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the rows stored under key while they are fresh. On a miss or
// an expired entry it runs fetch, stores the result, and returns it. Fetch
// errors are not cached.
func (c *Cache) Get(key string, fetch func() ([]Record, error)) ([]Record, error) {
	if rows, ok := c.lookup(key); ok {
		return rows, nil
	}

	v, err, _ := c.flight.Do(key, func() (any, error) {
		// A concurrent caller may have refreshed the entry while this one
		// waited on the flight group.
		if rows, ok := c.lookup(key); ok {
			return rows, nil
		}
		rows, err := fetch()
		if err != nil {
			return nil, err
		}
		c.store(key, rows)
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Record), nil
}

func (c *Cache) lookup(key string) ([]Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.rows, true
}

func (c *Cache) store(key string, rows []Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{rows: rows, storedAt: c.now()}
}
