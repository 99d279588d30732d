package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// TTLs per endpoint class. Live endpoints (messages, widget presence)
// go stale fast; guild metadata and roles change rarely.
const (
	TTLLive = 10 * time.Second
	TTLSlow = 60 * time.Second
)

// ResponseCache is a small advisory cache for upstream responses, keyed by
// endpoint+params. It is not a correctness mechanism: callers must tolerate
// slightly stale reads, and errors are never cached.
type ResponseCache struct {
	store *gocache.Cache
}

func NewResponseCache() *ResponseCache {
	return &ResponseCache{
		store: gocache.New(TTLSlow, 5*time.Minute),
	}
}

// Fetch returns the cached value for key if still fresh, otherwise calls
// fill, stores a successful result for ttl, and returns it.
func Fetch[T any](c *ResponseCache, key string, ttl time.Duration, fill func() (T, error)) (T, error) {
	if cached, ok := c.store.Get(key); ok {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	value, err := fill()
	if err != nil {
		return value, err
	}

	c.store.Set(key, value, ttl)
	return value, nil
}

// Invalidate drops a single entry, e.g. after posting a message to a
// channel whose feed is cached.
func (c *ResponseCache) Invalidate(key string) {
	c.store.Delete(key)
}
