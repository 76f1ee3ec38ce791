// Package containers is a thin factory over the core data structures.
//
// It validates construction parameters up front so callers get a usable
// instance or an error, never a silently degenerate one. No shared state
// lives here; every call returns an independent instance.
package containers

import (
	"github.com/charmbracelet/log"

	"github.com/MikVR7/homie-core/pkg/bloom"
	"github.com/MikVR7/homie-core/pkg/cache"
	"github.com/MikVR7/homie-core/pkg/pqueue"
	"github.com/MikVR7/homie-core/pkg/trie"
)

// NewTrie returns an empty prefix trie mapping string keys to V.
func NewTrie[V any]() *trie.Trie[V] {
	return trie.New[V]()
}

// NewCache returns an LRU cache bounded to capacity entries. Capacity
// must be positive.
func NewCache[K comparable, V any](capacity int) (*cache.Cache[K, V], error) {
	c, err := cache.New[K, V](capacity)
	if err != nil {
		log.Errorf("Rejected cache construction: %v", err)
		return nil, err
	}
	return c, nil
}

// NewBloomFilter returns a Bloom filter sized for expectedItems at the
// default false-positive rate. expectedItems must be positive.
func NewBloomFilter(expectedItems int) (*bloom.Filter, error) {
	f, err := bloom.New(expectedItems)
	if err != nil {
		log.Errorf("Rejected bloom filter construction: %v", err)
		return nil, err
	}
	return f, nil
}

// NewBloomFilterWithRate returns a Bloom filter sized for expectedItems
// at the given target false-positive rate in (0, 1).
func NewBloomFilterWithRate(expectedItems int, fpRate float64) (*bloom.Filter, error) {
	f, err := bloom.NewWithRate(expectedItems, fpRate)
	if err != nil {
		log.Errorf("Rejected bloom filter construction: %v", err)
		return nil, err
	}
	return f, nil
}

// NewPriorityQueue returns an empty priority queue ordered by cmp, which
// must not be nil.
func NewPriorityQueue[T any](cmp pqueue.Comparator[T]) (*pqueue.Queue[T], error) {
	q, err := pqueue.New(cmp)
	if err != nil {
		log.Errorf("Rejected priority queue construction: %v", err)
		return nil, err
	}
	return q, nil
}
