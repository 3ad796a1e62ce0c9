package storage

import (
	"context"
	"github.com/maypok86/otter/v2"
	"time"
)

// Cache is a bounded, access-expiring map in front of an expensive loader.
type Cache[T any] struct {
	outer *otter.Cache[string, T]
}

// NewCache builds the cache. capacity <= 0 means unbounded, ttl <= 0 means
// entries never expire. onDelete, if set, runs whenever an entry leaves.
func NewCache[T any](capacity int, ttl time.Duration, onDelete func(key string, val T)) *Cache[T] {
	opts := &otter.Options[string, T]{}
	if capacity > 0 {
		opts.MaximumSize = capacity
		opts.InitialCapacity = capacity
	}
	if ttl > 0 {
		opts.ExpiryCalculator = otter.ExpiryAccessing[string, T](ttl)
	}
	if onDelete != nil {
		opts.OnDeletion = func(e otter.DeletionEvent[string, T]) {
			onDelete(e.Key, e.Value)
		}
	}

	return &Cache[T]{outer: otter.Must(opts)}
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.outer.GetIfPresent(key)
}

// GetOrLoad returns the cached value or runs load once per key, even when
// several callers miss at the same time.
func (c *Cache[T]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context, key string) (T, error)) (T, error) {
	return c.outer.Get(ctx, key, otter.LoaderFunc[string, T](load))
}

func (c *Cache[T]) Len() int {
	return c.outer.EstimatedSize()
}

func (c *Cache[T]) ClearKey(key string) {
	c.outer.Invalidate(key)
}
