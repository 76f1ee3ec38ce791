package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		_, err := New[string, int](capacity)
		assert.Error(t, err, "capacity %d", capacity)
	}
}

func TestPutGet(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestEvictionOrder(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("k1", 1)
	c.Put("k2", 2)
	c.Put("k3", 3)
	c.Put("k4", 4)

	assert.False(t, c.ContainsKey("k1"), "oldest entry is evicted")
	assert.True(t, c.ContainsKey("k2"))
	assert.True(t, c.ContainsKey("k4"))
	assert.Equal(t, 3, c.Len())
}

func TestGetPromotesRecency(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("k1", 1)
	c.Put("k2", 2)
	c.Put("k3", 3)

	// touch k1 so k2 becomes the eviction candidate
	_, ok := c.Get("k1")
	require.True(t, ok)

	c.Put("k4", 4)

	assert.True(t, c.ContainsKey("k1"))
	assert.False(t, c.ContainsKey("k2"))
}

func TestPutUpdateDoesNotEvict(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.ContainsKey("b"))

	v, _ := c.Get("a")
	assert.Equal(t, 10, v)

	// the update made "a" most recently used, so "b" goes next
	c.Put("c", 3)
	assert.True(t, c.ContainsKey("a"))
	assert.False(t, c.ContainsKey("b"))
}

func TestHitRate(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.HitRate(), "no accesses yet")

	c.Put("a", 1)
	c.Get("a")       // hit
	c.Get("missing") // miss

	assert.Equal(t, 0.5, c.HitRate())
}

func TestContainsKeyLeavesRecencyAlone(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)

	// ContainsKey must not promote "a"
	require.True(t, c.ContainsKey("a"))
	c.Put("c", 3)

	assert.False(t, c.ContainsKey("a"))
	assert.Equal(t, 0.0, c.HitRate(), "ContainsKey does not count as access")
}

func TestRemove(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("a", 1)

	v, ok := c.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Remove("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestKeysValuesSnapshot(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Get("a")

	assert.Equal(t, []string{"a", "c", "b"}, c.Keys())
	assert.Equal(t, []int{1, 3, 2}, c.Values())
}

func TestClear(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Get("a")
	c.Get("missing")

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.HitRate())
	assert.Equal(t, 3, c.Cap(), "capacity survives Clear")

	stats := c.Stats()
	assert.Equal(t, 0, stats.HitCount)
	assert.Equal(t, 0, stats.MissCount)
}

func TestStats(t *testing.T) {
	c, err := New[string, int](4)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Get("zz")

	stats := c.Stats()
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, 4, stats.Capacity)
	assert.Equal(t, 1, stats.HitCount)
	assert.Equal(t, 1, stats.MissCount)
	assert.Equal(t, 0.5, stats.HitRate)
	assert.Equal(t, 0.5, stats.UtilizationRate)
}
