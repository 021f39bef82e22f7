package imagery

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CacheStats counts cache lookups, typically backed by Prometheus counters.
type CacheStats interface {
	CacheHit()
	CacheMiss()
}

// CachedSource wraps a Source with a TTL cache keyed by URL. The photo set
// is tiny (one per region), so entries are only evicted by expiry.
type CachedSource struct {
	inner Source
	cache *gocache.Cache
	stats CacheStats
}

// NewCachedSource creates a cache decorator around a photo source. Pass a
// nil stats sink to skip counting.
func NewCachedSource(inner Source, ttl time.Duration, stats CacheStats) *CachedSource {
	return &CachedSource{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
		stats: stats,
	}
}

func (c *CachedSource) Fetch(ctx context.Context, url string) (Result, error) {
	if v, ok := c.cache.Get(url); ok {
		if c.stats != nil {
			c.stats.CacheHit()
		}
		return v.(Result), nil
	}
	if c.stats != nil {
		c.stats.CacheMiss()
	}

	result, err := c.inner.Fetch(ctx, url)
	if err != nil {
		// Failures are not cached so transient upstream errors can recover.
		return Result{}, err
	}
	c.cache.Set(url, result, gocache.DefaultExpiration)
	return result, nil
}
