package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a ristretto cache keyed by string, e.g. a request path.
type Cache[T any] struct {
	impl       *ristretto.Cache[string, T]
	name       string
	defaultTTL time.Duration
}

// Stats is a snapshot of cache activity, reported by the health endpoint.
// There is no item count: entries dropped by TTL expiry are not counted as
// evictions, so added minus evicted keys overstates what is held.
type Stats struct {
	Name          string  `json:"name"`
	Hits          uint64  `json:"hits"`
	Misses        uint64  `json:"misses"`
	HitRate       float64 `json:"hit_rate"`
	KeysAdded     uint64  `json:"keys_added"`
	KeysEvicted   uint64  `json:"keys_evicted"`
	CostAdded     uint64  `json:"cost_added"`
	CostEvicted   uint64  `json:"cost_evicted"`
	SetsDropped   uint64  `json:"sets_dropped"`
	SetsRejected  uint64  `json:"sets_rejected"`
	MemoryUsedKB  float64 `json:"memory_used_kb"`
	DefaultTTLSec float64 `json:"default_ttl_seconds"`
}

// New creates a cache whose entries are weighed by costFunc and expire after
// defaultTTL unless stored with SetWithTTL.
func New[T any](name string, costFunc func(T) int64, defaultTTL time.Duration) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,     // pages are few; 10x the expected key count
		MaxCost:     1 << 22, // 4MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,

		// cost is the page size in bytes, nothing else
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:       impl,
		name:       name,
		defaultTTL: defaultTTL,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the default TTL. A zero cost lets the cost
// function decide.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.SetWithTTL(key, value, cost, c.defaultTTL)
}

func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes have been applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns a snapshot of the cache metrics.
func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics
	return Stats{
		Name:          c.name,
		Hits:          m.Hits(),
		Misses:        m.Misses(),
		HitRate:       m.Ratio() * 100,
		KeysAdded:     m.KeysAdded(),
		KeysEvicted:   m.KeysEvicted(),
		CostAdded:     m.CostAdded(),
		CostEvicted:   m.CostEvicted(),
		SetsDropped:   m.SetsDropped(),
		SetsRejected:  m.SetsRejected(),
		MemoryUsedKB:  float64(m.CostAdded()-m.CostEvicted()) / 1024,
		DefaultTTLSec: c.defaultTTL.Seconds(),
	}
}
