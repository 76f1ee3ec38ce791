package pqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ascending(a, b int) int { return a - b }

func TestNewRejectsNilComparator(t *testing.T) {
	_, err := New[int](nil)
	assert.Error(t, err)
}

func TestRemoveFirstYieldsSortedOrder(t *testing.T) {
	q, err := New(ascending)
	require.NoError(t, err)

	for _, n := range []int{5, 1, 3, 2, 4} {
		q.Add(n)
	}

	var got []int
	for {
		n, ok := q.RemoveFirst()
		if !ok {
			break
		}
		got = append(got, n)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.True(t, q.IsEmpty())
}

func TestMaxQueueViaComparator(t *testing.T) {
	q, err := New(func(a, b int) int { return b - a })
	require.NoError(t, err)

	q.Add(2)
	q.Add(9)
	q.Add(4)

	n, ok := q.First()
	require.True(t, ok)
	assert.Equal(t, 9, n)
}

func TestFirstDoesNotRemove(t *testing.T) {
	q, err := New(ascending)
	require.NoError(t, err)

	q.Add(7)
	q.Add(3)

	n, ok := q.First()
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, q.Len())
}

func TestEmptyQueue(t *testing.T) {
	q, err := New(ascending)
	require.NoError(t, err)

	_, ok := q.RemoveFirst()
	assert.False(t, ok)

	_, ok = q.First()
	assert.False(t, ok)

	assert.True(t, q.IsEmpty())
	assert.Empty(t, q.ToList())
}

func TestToListIsSortedAndNonMutating(t *testing.T) {
	q, err := New(ascending)
	require.NoError(t, err)

	for _, n := range []int{8, 6, 7, 5} {
		q.Add(n)
	}

	list := q.ToList()
	assert.Equal(t, []int{5, 6, 7, 8}, list)
	assert.Equal(t, 4, q.Len(), "ToList leaves the queue untouched")

	first, ok := q.First()
	require.True(t, ok)
	assert.Equal(t, 5, first)

	// mutating the returned slice must not reach the heap
	list[0] = -1
	first, _ = q.First()
	assert.Equal(t, 5, first)
}

func TestClear(t *testing.T) {
	q, err := New(ascending)
	require.NoError(t, err)

	q.Add(1)
	q.Add(2)
	q.Clear()

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())

	q.Add(9)
	n, ok := q.RemoveFirst()
	require.True(t, ok)
	assert.Equal(t, 9, n, "queue is reusable after Clear")
}

func TestStructItems(t *testing.T) {
	type job struct {
		name     string
		priority int
	}
	q, err := New(func(a, b job) int { return a.priority - b.priority })
	require.NoError(t, err)

	q.Add(job{name: "reindex", priority: 5})
	q.Add(job{name: "scan", priority: 1})
	q.Add(job{name: "merge", priority: 3})

	first, ok := q.RemoveFirst()
	require.True(t, ok)
	assert.Equal(t, "scan", first.name)
}
