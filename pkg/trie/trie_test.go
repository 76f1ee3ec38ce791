package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndSearch(t *testing.T) {
	tr := New[int]()

	tr.Insert("documents", 1)
	tr.Insert("downloads", 2)
	tr.Insert("desktop", 3)

	v, ok := tr.Search("downloads")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = tr.Search("down")
	assert.False(t, ok, "prefix of a key is not a key")

	_, ok = tr.Search("music")
	assert.False(t, ok)

	assert.Equal(t, 3, tr.Len())
}

func TestInsertOverwrite(t *testing.T) {
	tr := New[string]()

	tr.Insert("config", "v1")
	tr.Insert("config", "v2")

	v, ok := tr.Search("config")
	require.True(t, ok)
	assert.Equal(t, "v2", v)
	assert.Equal(t, 1, tr.Len(), "overwrite must not grow size")
}

func TestContains(t *testing.T) {
	tr := New[int]()
	tr.Insert("hello", 1)

	assert.True(t, tr.Contains("hello"))
	assert.False(t, tr.Contains("hell"))
	assert.False(t, tr.Contains("hello!"))
}

func TestSuggest(t *testing.T) {
	tr := New[int]()
	for i, key := range []string{"car", "card", "care", "cat", "dog"} {
		tr.Insert(key, i)
	}

	assert.Equal(t, []string{"car", "card", "care", "cat"}, tr.Suggest("ca", 0))
	assert.Equal(t, []string{"car", "card", "care"}, tr.Suggest("car", 0))
	assert.Len(t, tr.Suggest("ca", 2), 2)
	assert.Empty(t, tr.Suggest("x", 0))

	// every suggestion must carry the prefix
	for _, key := range tr.Suggest("ca", 0) {
		assert.True(t, tr.Contains(key))
	}
}

func TestSuggestUnicode(t *testing.T) {
	tr := New[int]()
	tr.Insert("über", 1)
	tr.Insert("übung", 2)
	tr.Insert("umlaut", 3)

	assert.ElementsMatch(t, []string{"über", "übung"}, tr.Suggest("üb", 0))
}

func TestRemove(t *testing.T) {
	tr := New[int]()
	tr.Insert("car", 1)
	tr.Insert("card", 2)
	tr.Insert("care", 3)

	assert.True(t, tr.Remove("card"))
	assert.False(t, tr.Remove("card"), "second remove reports absence")
	assert.False(t, tr.Remove("ca"), "prefix-only path is not removable")

	assert.False(t, tr.Contains("card"))
	assert.True(t, tr.Contains("car"), "siblings survive removal")
	assert.True(t, tr.Contains("care"))
	assert.Equal(t, 2, tr.Len())
}

func TestRemovePrunesNodes(t *testing.T) {
	tr := New[int]()
	tr.Insert("a", 1)
	tr.Insert("abcdef", 2)

	before := tr.Stats().TotalNodes
	require.True(t, tr.Remove("abcdef"))
	after := tr.Stats().TotalNodes

	assert.Less(t, after, before)
	assert.Equal(t, 1, after-1, "only the path for \"a\" remains")
	assert.Equal(t, 1, tr.Stats().MaxDepth)
}

func TestKeys(t *testing.T) {
	tr := New[int]()
	words := []string{"pear", "apple", "plum"}
	for i, w := range words {
		tr.Insert(w, i)
	}
	assert.Equal(t, []string{"apple", "pear", "plum"}, tr.Keys())
}

func TestStats(t *testing.T) {
	tr := New[int]()
	tr.Insert("car", 1)
	tr.Insert("card", 2)

	stats := tr.Stats()
	assert.Equal(t, 2, stats.Size)
	// shared prefix: c-a-r-d plus root
	assert.Equal(t, 5, stats.TotalNodes)
	assert.Greater(t, stats.TotalNodes, stats.Size)
	assert.Equal(t, 4, stats.MaxDepth)
}

func TestClear(t *testing.T) {
	tr := New[int]()
	tr.Insert("one", 1)
	tr.Insert("two", 2)

	tr.Clear()

	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.Keys())
	assert.Equal(t, Stats{Size: 0, TotalNodes: 1, MaxDepth: 0}, tr.Stats())
}

func TestEmptyTrie(t *testing.T) {
	tr := New[int]()

	assert.True(t, tr.IsEmpty())
	assert.False(t, tr.Contains(""))
	assert.Empty(t, tr.Suggest("", 0))
	assert.False(t, tr.Remove("anything"))
}
