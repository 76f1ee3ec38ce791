package bloom

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadParams(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)

	_, err = New(-5)
	assert.Error(t, err)

	_, err = NewWithRate(100, 0)
	assert.Error(t, err)

	_, err = NewWithRate(100, 1)
	assert.Error(t, err)

	_, err = NewWithRate(100, 1.5)
	assert.Error(t, err)
}

func TestSizing(t *testing.T) {
	f, err := NewWithRate(100, 0.01)
	require.NoError(t, err)

	stats := f.Stats()
	// m = -100*ln(0.01)/ln(2)^2 ~ 959, k = m/n*ln(2) ~ 7
	assert.Equal(t, uint64(959), stats.Bits)
	assert.Equal(t, uint64(7), stats.HashFuncs)
}

func TestNoFalseNegatives(t *testing.T) {
	f, err := New(100)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	items := make([]string, 200)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d-%d", i, rng.Int63())
		f.Add(items[i])
	}

	for _, item := range items {
		assert.True(t, f.MightContain(item), "added item %q must be reported present", item)
	}
	assert.Equal(t, 200, f.Count())
}

func TestFalsePositiveRateStaysReasonable(t *testing.T) {
	f, err := New(100)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		f.Add(fmt.Sprintf("member-%d", i))
	}

	falsePositives := 0
	const probes = 1000
	for i := 0; i < probes; i++ {
		if f.MightContain(fmt.Sprintf("outsider-%d", i)) {
			falsePositives++
		}
	}

	rate := float64(falsePositives) / probes
	assert.Less(t, rate, 0.5, "false-positive rate %f is unreasonable", rate)
}

func TestMightContainOnEmptyFilter(t *testing.T) {
	f, err := New(10)
	require.NoError(t, err)

	assert.False(t, f.MightContain("anything"))
	assert.Equal(t, 0.0, f.FillRatio())
}

func TestFillRatio(t *testing.T) {
	f, err := New(100)
	require.NoError(t, err)

	f.Add("alpha")
	f.Add("beta")

	ratio := f.FillRatio()
	assert.Greater(t, ratio, 0.0)
	assert.Less(t, ratio, 1.0)
}

func TestClear(t *testing.T) {
	f, err := New(50)
	require.NoError(t, err)

	f.Add("one")
	f.Add("two")
	require.True(t, f.MightContain("one"))

	f.Clear()

	assert.False(t, f.MightContain("one"))
	assert.Equal(t, 0, f.Count())
	assert.Equal(t, uint64(0), f.Stats().SetBits)
}

func TestStats(t *testing.T) {
	f, err := New(100)
	require.NoError(t, err)

	f.Add("x")

	stats := f.Stats()
	assert.Equal(t, 1, stats.ItemCount)
	assert.Greater(t, stats.SetBits, uint64(0))
	assert.LessOrEqual(t, stats.SetBits, stats.HashFuncs)
	assert.InDelta(t, float64(stats.SetBits)/float64(stats.Bits), stats.FillRatio, 1e-12)
}
