// Package pqueue implements a comparator-ordered priority queue backed
// by a binary heap.
//
// The comparator decides the ordering: a min-queue under a comparator
// returning a-b, a max-queue under its negation. Insert and extraction
// are O(log n) via container/heap sift operations.
package pqueue

import (
	"container/heap"
	"fmt"
	"sort"
)

// Comparator orders two items: negative when a sorts before b, zero when
// equal, positive when a sorts after b.
type Comparator[T any] func(a, b T) int

// Queue is a priority queue over T. The root is always the minimal item
// under the comparator.
type Queue[T any] struct {
	inner *innerHeap[T]
}

// innerHeap adapts the item slice to heap.Interface.
type innerHeap[T any] struct {
	items []T
	cmp   Comparator[T]
}

func (h *innerHeap[T]) Len() int           { return len(h.items) }
func (h *innerHeap[T]) Less(i, j int) bool { return h.cmp(h.items[i], h.items[j]) < 0 }
func (h *innerHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *innerHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *innerHeap[T]) Pop() any {
	last := len(h.items) - 1
	item := h.items[last]
	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	return item
}

// New returns an empty queue ordered by cmp. A nil comparator is
// rejected.
func New[T any](cmp Comparator[T]) (*Queue[T], error) {
	if cmp == nil {
		return nil, fmt.Errorf("pqueue: comparator must not be nil")
	}
	return &Queue[T]{inner: &innerHeap[T]{cmp: cmp}}, nil
}

// Add inserts item, sifting it up to keep the heap ordered.
func (q *Queue[T]) Add(item T) {
	heap.Push(q.inner, item)
}

// RemoveFirst removes and returns the minimal item. The second return is
// false on an empty queue.
func (q *Queue[T]) RemoveFirst() (T, bool) {
	if len(q.inner.items) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(q.inner).(T), true
}

// First returns the minimal item without removing it.
func (q *Queue[T]) First() (T, bool) {
	if len(q.inner.items) == 0 {
		var zero T
		return zero, false
	}
	return q.inner.items[0], true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.inner.items) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return len(q.inner.items) == 0 }

// Clear drops every item.
func (q *Queue[T]) Clear() {
	q.inner.items = nil
}

// ToList returns the queued items fully sorted under the comparator
// without mutating the queue.
func (q *Queue[T]) ToList() []T {
	out := make([]T, len(q.inner.items))
	copy(out, q.inner.items)
	sort.SliceStable(out, func(i, j int) bool { return q.inner.cmp(out[i], out[j]) < 0 })
	return out
}
