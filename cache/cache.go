// Package cache is the query-side cache behind the data-fetching layer:
// values are addressed by hierarchical keys, served while fresh, refetched
// when stale or invalidated, and concurrent identical fetches collapse into
// one network call.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Key addresses one cached query, most-significant segment first,
// e.g. {"courses", "my-courses"}.
type Key []string

func NewKey(segments ...string) Key { return segments }

func (k Key) String() string { return strings.Join(k, "/") }

// HasPrefix reports whether k falls under prefix; every key falls under the
// empty prefix.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

type entry struct {
	key       Key
	value     any
	fetchedAt time.Time
}

// Cache stores query results with a global stale time. Stale entries are
// kept (the last value is still readable for optimistic rendering) but the
// next Fetch goes to the network.
type Cache struct {
	mu        sync.RWMutex
	staleTime time.Duration
	entries   map[string]entry
	sf        singleflight.Group

	nowFunc func() time.Time // mockable
}

func New(staleTime time.Duration) *Cache {
	return &Cache{
		staleTime: staleTime,
		entries:   make(map[string]entry),
		nowFunc:   time.Now,
	}
}

func (c *Cache) lookup(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	if c.nowFunc().Sub(e.fetchedAt) > c.staleTime {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) store(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = entry{key: key, value: value, fetchedAt: c.nowFunc()}
}

// Peek returns the cached value even when stale, without fetching.
func (c *Cache) Peek(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Invalidate drops every entry under any of the given key prefixes; the
// next Fetch for those keys refetches.
func (c *Cache) Invalidate(prefixes ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for ks, e := range c.entries {
		for _, prefix := range prefixes {
			if e.key.HasPrefix(prefix) {
				delete(c.entries, ks)
				break
			}
		}
	}
}

// Clear drops everything; used on logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// fetch returns the fresh cached value or runs fn, deduplicating concurrent
// calls for the same key into one shared execution.
func (c *Cache) fetch(ctx context.Context, key Key, fn func(context.Context) (any, error)) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}
	v, err, _ := c.sf.Do(key.String(), func() (any, error) {
		// the entry may have been filled while we waited on the flight
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Fetch is the typed entry point over Cache.fetch.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn func(context.Context) (T, error)) (T, error) {
	v, err := c.fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
