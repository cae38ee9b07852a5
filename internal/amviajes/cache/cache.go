// Package cache is a small in-process TTL cache.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// minSweep is the entry count at which Set first drops expired entries.
const minSweep = 64

type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	sweepAt int
	clone   func(T) T
	now     func() time.Time
}

// New creates a cache. clone, when set, copies values on the way in and out
// so callers cannot mutate cached slices.
func New[T any](clone func(T) T) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		sweepAt: minSweep,
		clone:   clone,
		now:     time.Now,
	}
}

func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if c.now().After(e.expiry) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.expiry.Equal(e.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return c.cloneValue(e.value), true
}

// Set stores value for ttl. A non-positive ttl disables caching. Once the
// cache grows to twice its size after the previous sweep, expired entries
// are dropped.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if c == nil || ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = entry[T]{value: c.cloneValue(value), expiry: now.Add(ttl)}
	if len(c.entries) >= c.sweepAt {
		c.sweep(now)
	}
}

// sweep must be called with c.mu held.
func (c *Cache[T]) sweep(now time.Time) {
	for k, e := range c.entries {
		if now.After(e.expiry) {
			delete(c.entries, k)
		}
	}
	c.sweepAt = max(2*len(c.entries), minSweep)
}

func (c *Cache[T]) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
