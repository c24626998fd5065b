package session

import (
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Registry maps browser session IDs to per-browser state. Entries expire after
// ttl without access; an expired ID gets a fresh value on its next visit.
type Registry[T any] struct {
	cache *ttlcache.Cache[string, T]
	once  sync.Once
}

// NewRegistry creates a registry and starts its expiry loop
func NewRegistry[T any](ttl time.Duration, factory func() T) *Registry[T] {
	create := ttlcache.LoaderFunc[string, T](func(c *ttlcache.Cache[string, T], id string) *ttlcache.Item[string, T] {
		return c.Set(id, factory(), ttlcache.DefaultTTL)
	})

	cache := ttlcache.New[string, T](
		ttlcache.WithTTL[string, T](ttl),
		// concurrent first requests of one browser must share a value
		ttlcache.WithLoader[string, T](ttlcache.NewSuppressedLoader[string, T](create, nil)),
	)

	go cache.Start()

	return &Registry[T]{cache: cache}
}

// Get returns the value for id, creating it on first use, and extends its lifetime
func (r *Registry[T]) Get(id string) T {
	return r.cache.Get(id).Value()
}

// Len counts stored entries, including expired ones not yet evicted
func (r *Registry[T]) Len() int {
	return r.cache.Len()
}

// Close stops the expiry loop
func (r *Registry[T]) Close() {
	r.once.Do(r.cache.Stop)
}
