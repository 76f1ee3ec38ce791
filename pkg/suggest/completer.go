package suggest

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/MikVR7/homie-core/pkg/bloom"
	"github.com/MikVR7/homie-core/pkg/cache"
	"github.com/MikVR7/homie-core/pkg/match"
)

// Completer indexes path entries with access frequencies and serves
// ranked prefix completions. Lookups are accent and case insensitive;
// results keep the original spelling.
type Completer struct {
	index        *patricia.Trie
	originals    map[string]string
	freqs        map[string]int
	seen         *bloom.Filter
	results      *cache.Cache[string, []Suggestion]
	maxFrequency int
}

var _ ICompleter = (*Completer)(nil)

// NewCompleter builds a completer with a result cache of cacheCapacity
// queries and a registration pre-filter sized for expectedEntries.
func NewCompleter(cacheCapacity, expectedEntries int) (*Completer, error) {
	results, err := cache.New[string, []Suggestion](cacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("suggest: result cache: %w", err)
	}
	seen, err := bloom.New(expectedEntries)
	if err != nil {
		return nil, fmt.Errorf("suggest: registration filter: %w", err)
	}
	return &Completer{
		index:     patricia.NewTrie(),
		originals: make(map[string]string),
		freqs:     make(map[string]int),
		seen:      seen,
		results:   results,
	}, nil
}

// AddEntry registers path with the given frequency. The Bloom filter
// answers the common "definitely new" case without an exact lookup;
// hits fall through to the map check, so false positives only cost the
// lookup and duplicates accumulate frequency instead of reinserting.
func (c *Completer) AddEntry(path string, frequency int) {
	if path == "" {
		return
	}
	if frequency < 1 {
		frequency = 1
	}
	normal := match.Normalize(path)

	if c.seen.MightContain(normal) {
		if prev, exists := c.freqs[normal]; exists {
			frequency += prev
		}
	}
	// Set overwrites an existing prefix; Insert would keep the old
	// frequency on re-registration.
	c.index.Set(patricia.Prefix(normal), frequency)
	c.freqs[normal] = frequency
	c.originals[normal] = path
	c.seen.Add(normal)
	if frequency > c.maxFrequency {
		c.maxFrequency = frequency
	}
	// cached query results may now be stale
	c.results.Clear()
}

// Complete returns suggestions for prefix ranked by frequency, then
// lexicographically. When the prefix walk finds nothing, scattered
// fuzzy matches are ranked as a fallback. limit <= 0 means unlimited.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" {
		return nil
	}
	normal := match.Normalize(prefix)
	cacheKey := fmt.Sprintf("%s|%d", normal, limit)
	if cached, ok := c.results.Get(cacheKey); ok {
		return cached
	}

	suggestions := c.walkPrefix(normal)
	if len(suggestions) == 0 {
		suggestions = c.fuzzyFallback(normal)
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Path < suggestions[j].Path
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	c.results.Put(cacheKey, suggestions)
	return suggestions
}

// walkPrefix collects every indexed entry below the normalized prefix.
func (c *Completer) walkPrefix(normal string) []Suggestion {
	var suggestions []Suggestion
	err := c.index.VisitSubtree(patricia.Prefix(normal), func(p patricia.Prefix, item patricia.Item) error {
		key := string(p)
		freq, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for entry %s", item, key)
			freq = 1
		}
		suggestions = append(suggestions, Suggestion{
			Path:      c.original(key),
			Frequency: freq,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Visiting index subtree: %v", err)
	}
	return suggestions
}

// fuzzyFallback ranks entries whose runes contain the query as a
// subsequence, folding the match score into the frequency ranking.
func (c *Completer) fuzzyFallback(normal string) []Suggestion {
	var suggestions []Suggestion
	for key, freq := range c.freqs {
		score, ok := match.Score(normal, key)
		if !ok {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Path:      c.original(key),
			Frequency: freq + score,
		})
	}
	return suggestions
}

func (c *Completer) original(key string) string {
	if orig, ok := c.originals[key]; ok {
		return orig
	}
	return key
}

// Len returns the number of indexed entries.
func (c *Completer) Len() int { return len(c.freqs) }

// Stats reports index and cache counters.
func (c *Completer) Stats() map[string]int {
	cacheStats := c.results.Stats()
	bloomStats := c.seen.Stats()
	return map[string]int{
		"entries":        len(c.freqs),
		"max_frequency":  c.maxFrequency,
		"cache_size":     cacheStats.Size,
		"cache_hits":     cacheStats.HitCount,
		"cache_misses":   cacheStats.MissCount,
		"filter_items":   bloomStats.ItemCount,
		"filter_setbits": int(bloomStats.SetBits),
	}
}
