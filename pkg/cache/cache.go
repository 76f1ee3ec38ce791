// Package cache implements a fixed-capacity key/value cache with least
// recently used eviction and hit/miss accounting.
//
// Recency is tracked with a doubly linked list over map entries: the
// front of the list is the most recently used entry, the back is the
// eviction candidate. All operations are O(1). The cache is
// single-threaded; callers sharing one across goroutines must serialize
// access externally.
package cache

import (
	"container/list"
	"fmt"
)

// entry is the payload stored in the recency list.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a bounded LRU cache from K to V. Capacity is fixed at
// construction; size never exceeds it.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	hits     int
	misses   int
}

// Stats is a point-in-time snapshot of cache usage.
type Stats struct {
	Size            int     `json:"size"`
	Capacity        int     `json:"capacity"`
	HitCount        int     `json:"hit_count"`
	MissCount       int     `json:"miss_count"`
	HitRate         float64 `json:"hit_rate"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// New returns an empty cache holding at most capacity entries. A
// capacity below one is rejected.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cache: capacity must be positive, got %d", capacity)
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}, nil
}

// Put inserts or updates key. Updating an existing key never evicts and
// marks the key as most recently used. Inserting at capacity evicts the
// least recently used entry first.
func (c *Cache[K, V]) Put(key K, value V) {
	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(elem)
		return
	}
	if c.order.Len() >= c.capacity {
		c.evict()
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Get returns the value for key, promoting it to most recently used on a
// hit. The second return is false on a miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	elem, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Remove deletes key and returns the removed value, if any. Misses do
// not count against the hit rate.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.Remove(elem)
	delete(c.items, key)
	return elem.Value.(*entry[K, V]).value, true
}

// ContainsKey reports presence without touching recency or counters.
func (c *Cache[K, V]) ContainsKey(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Keys returns a snapshot of the cached keys, most recently used first.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	return keys
}

// Values returns a snapshot of the cached values, most recently used
// first.
func (c *Cache[K, V]) Values() []V {
	values := make([]V, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		values = append(values, elem.Value.(*entry[K, V]).value)
	}
	return values
}

// Len returns the current number of entries.
func (c *Cache[K, V]) Len() int { return c.order.Len() }

// Cap returns the fixed capacity.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Clear drops every entry and resets the hit/miss counters, returning
// the cache to its freshly constructed state.
func (c *Cache[K, V]) Clear() {
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
	c.hits = 0
	c.misses = 0
}

// HitRate returns hits / (hits + misses), or 0 before any access.
func (c *Cache[K, V]) HitRate() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0.0
	}
	return float64(c.hits) / float64(total)
}

// Stats returns a snapshot of size, counters and utilization.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Size:            c.order.Len(),
		Capacity:        c.capacity,
		HitCount:        c.hits,
		MissCount:       c.misses,
		HitRate:         c.HitRate(),
		UtilizationRate: float64(c.order.Len()) / float64(c.capacity),
	}
}

// evict drops the least recently used entry.
func (c *Cache[K, V]) evict() {
	back := c.order.Back()
	if back == nil {
		return
	}
	c.order.Remove(back)
	delete(c.items, back.Value.(*entry[K, V]).key)
}
