// Package suggest implements the path completion engine: a
// frequency-ranked patricia index over normalized entries, an LRU cache
// of query results, and a Bloom pre-filter in front of duplicate
// registration checks.
package suggest

// ICompleter is the surface consumed by the server and CLI layers.
type ICompleter interface {
	// Complete returns suggestions for a prefix, best ranked first,
	// truncated to limit when limit is positive.
	Complete(prefix string, limit int) []Suggestion

	// AddEntry registers a path with an access frequency; re-adding an
	// existing path accumulates frequency instead of duplicating it.
	AddEntry(path string, frequency int)

	// Stats reports counters about the index and its caches.
	Stats() map[string]int
}

// Suggestion is a ranked completion candidate.
type Suggestion struct {
	Path      string
	Frequency int
}
