// Package trie implements an ordered prefix index over string keys.
//
// Keys map to arbitrary typed values; lookups, prefix autocompletion and
// deletion all walk the rune path from the root. The structure is
// single-threaded: callers sharing an instance across goroutines must
// serialize access externally.
package trie

import "sort"

// node owns its children exclusively; there are no back references.
// A key is present iff the rune path from the root ends at a node with
// terminal set.
type node[V any] struct {
	children map[rune]*node[V]
	value    V
	terminal bool
}

func newNode[V any]() *node[V] {
	return &node[V]{children: make(map[rune]*node[V])}
}

// Trie is a prefix tree mapping string keys to values of type V.
type Trie[V any] struct {
	root *node[V]
	size int
}

// Stats describes the shape of the trie.
type Stats struct {
	Size       int `json:"size"`
	TotalNodes int `json:"total_nodes"`
	MaxDepth   int `json:"max_depth"`
}

// New returns an empty trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{root: newNode[V]()}
}

// Insert stores value under key, overwriting any previous value.
// Size grows only when the key was previously absent.
func (t *Trie[V]) Insert(key string, value V) {
	current := t.root
	for _, r := range key {
		child, ok := current.children[r]
		if !ok {
			child = newNode[V]()
			current.children[r] = child
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
	current.value = value
}

// Search returns the value stored under key. The second return is false
// when key is absent or only a prefix of stored keys.
func (t *Trie[V]) Search(key string) (V, bool) {
	n := t.walk(key)
	if n == nil || !n.terminal {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Contains reports whether key is stored in the trie.
func (t *Trie[V]) Contains(key string) bool {
	n := t.walk(key)
	return n != nil && n.terminal
}

// Suggest returns stored keys that have prefix as a prefix, in
// lexicographic rune order. A limit <= 0 means unlimited; otherwise at
// most limit keys are returned.
func (t *Trie[V]) Suggest(prefix string, limit int) []string {
	start := t.walk(prefix)
	if start == nil {
		return nil
	}
	var keys []string
	collect(start, []rune(prefix), limit, &keys)
	return keys
}

// Keys returns every stored key in lexicographic rune order.
func (t *Trie[V]) Keys() []string {
	return t.Suggest("", 0)
}

// Remove deletes key and reports whether it was present. Internal nodes
// left without children or a terminal marker are pruned on the way back
// up.
func (t *Trie[V]) Remove(key string) bool {
	runes := []rune(key)
	path := make([]*node[V], 0, len(runes)+1)
	path = append(path, t.root)

	current := t.root
	for _, r := range runes {
		next, ok := current.children[r]
		if !ok {
			return false
		}
		current = next
		path = append(path, current)
	}
	if !current.terminal {
		return false
	}
	current.terminal = false
	var zero V
	current.value = zero
	t.size--

	for i := len(runes); i > 0; i-- {
		child := path[i]
		if len(child.children) > 0 || child.terminal {
			break
		}
		delete(path[i-1].children, runes[i-1])
	}
	return true
}

// Len returns the number of stored keys.
func (t *Trie[V]) Len() int { return t.size }

// IsEmpty reports whether no keys are stored.
func (t *Trie[V]) IsEmpty() bool { return t.size == 0 }

// Clear resets the trie to its freshly constructed state.
func (t *Trie[V]) Clear() {
	t.root = newNode[V]()
	t.size = 0
}

// Stats walks the whole trie. TotalNodes includes the root; MaxDepth is
// the rune length of the longest stored path.
func (t *Trie[V]) Stats() Stats {
	total, maxDepth := measure(t.root, 0)
	return Stats{
		Size:       t.size,
		TotalNodes: total,
		MaxDepth:   maxDepth,
	}
}

// walk returns the node reached by key, or nil when the path breaks off.
func (t *Trie[V]) walk(key string) *node[V] {
	current := t.root
	for _, r := range key {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// collect appends terminal keys below n in sorted child order until the
// limit is hit. limit <= 0 disables truncation.
func collect[V any](n *node[V], path []rune, limit int, out *[]string) {
	if limit > 0 && len(*out) >= limit {
		return
	}
	if n.terminal {
		*out = append(*out, string(path))
	}
	if len(n.children) == 0 {
		return
	}
	order := make([]rune, 0, len(n.children))
	for r := range n.children {
		order = append(order, r)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for _, r := range order {
		collect(n.children[r], append(path, r), limit, out)
		if limit > 0 && len(*out) >= limit {
			return
		}
	}
}

func measure[V any](n *node[V], depth int) (total, maxDepth int) {
	total = 1
	maxDepth = depth
	for _, child := range n.children {
		subTotal, subDepth := measure(child, depth+1)
		total += subTotal
		if subDepth > maxDepth {
			maxDepth = subDepth
		}
	}
	return total, maxDepth
}
