package adapter

import (
	"context"

	"github.com/hupe1980/filevault/internal/cache"
	"golang.org/x/sync/singleflight"
)

// Caching wraps an Adapter and adds a read-through record cache.
//
// Loads are served from an LRU keyed by record key; concurrent loads of the
// same key are collapsed into a single backend call. Saves write through and
// refresh the cache, deletes invalidate it. The cache reflects only traffic
// through this wrapper: writers bypassing it leave stale entries behind.
type Caching struct {
	inner Adapter
	cache cache.RecordCache
	group singleflight.Group
}

// NewCaching creates a new caching wrapper around inner.
// capacity is the cache budget in bytes; it defaults to 32MB if <= 0.
func NewCaching(inner Adapter, capacity int64) *Caching {
	if capacity <= 0 {
		capacity = 32 << 20
	}
	return &Caching{
		inner: inner,
		cache: cache.NewLRU(capacity),
	}
}

// Save writes through to the inner adapter and refreshes the cache.
func (c *Caching) Save(ctx context.Context, rec *Record) (bool, error) {
	ok, err := c.inner.Save(ctx, rec)
	if err != nil {
		c.cache.Invalidate(rec.Key)
		return ok, err
	}

	cached := make([]byte, len(rec.Content))
	copy(cached, rec.Content)
	c.cache.Set(rec.Key, cached)
	return ok, nil
}

// Load returns the record from the cache when possible, falling back to
// the inner adapter. Concurrent misses on the same key share one backend
// call via singleflight.
func (c *Caching) Load(ctx context.Context, key string) (*Record, error) {
	if data, ok := c.cache.Get(key); ok {
		copied := make([]byte, len(data))
		copy(copied, data)
		return &Record{Key: key, Content: copied}, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		rec, err := c.inner.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, rec.Content)
		return rec.Content, nil
	})
	if err != nil {
		return nil, err
	}

	data := v.([]byte)
	copied := make([]byte, len(data))
	copy(copied, data)
	return &Record{Key: key, Content: copied}, nil
}

// Init passes through to the inner adapter. Nothing is cached until the
// record is saved.
func (c *Caching) Init(ctx context.Context, key string, touch bool) (*Record, error) {
	return c.inner.Init(ctx, key, touch)
}

// Delete invalidates the cache entry and passes through.
func (c *Caching) Delete(ctx context.Context, key string) (bool, error) {
	c.cache.Invalidate(key)
	return c.inner.Delete(ctx, key)
}

// CacheStats returns cache hit/miss counters.
func (c *Caching) CacheStats() (hits, misses int64) {
	return c.cache.Stats()
}
