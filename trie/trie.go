package trie

// node is a trie vertex. Each node owns its children exclusively.
type node[V any] struct {
	children map[string]*node[V]
	value    V
	hasValue bool
}

// child returns the child for token, creating it when missing.
func (n *node[V]) child(token string) *node[V] {
	if n.children == nil {
		n.children = make(map[string]*node[V])
	}
	c, ok := n.children[token]
	if !ok {
		c = &node[V]{}
		n.children[token] = c
	}

	return c
}

// Trie maps token paths to values and answers longest-prefix queries.
// The zero value is an empty trie ready to use.
type Trie[V any] struct {
	root node[V]
	size int
}

// New returns an empty Trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Insert attaches value to path, replacing any value already there.
// An empty path attaches value to the root, making it the fallback for
// every query.
func (t *Trie[V]) Insert(path []string, value V) {
	n := &t.root
	for _, token := range path {
		n = n.child(token)
	}
	if !n.hasValue {
		t.size++
	}
	n.value = value
	n.hasValue = true
}

// FindLongestMatch returns the value attached to the deepest prefix of path
// that carries one. It reports false when no prefix, not even the root, has
// a value.
func (t *Trie[V]) FindLongestMatch(path []string) (V, bool) {
	v, _, ok := t.LongestMatch(path)
	return v, ok
}

// LongestMatch is FindLongestMatch that also returns depth, the number of
// tokens of path covered by the matched prefix; path[depth:] is the
// unmatched remainder. depth is 0 for a root match.
func (t *Trie[V]) LongestMatch(path []string) (value V, depth int, ok bool) {
	n := &t.root
	if n.hasValue {
		value, ok = n.value, true
	}
	for i, token := range path {
		next, found := n.children[token]
		if !found {
			break
		}
		n = next
		if n.hasValue {
			value, depth, ok = n.value, i+1, true
		}
	}

	return value, depth, ok
}

// Get returns the value attached exactly at path.
func (t *Trie[V]) Get(path []string) (V, bool) {
	n := &t.root
	for _, token := range path {
		next, found := n.children[token]
		if !found {
			var zero V
			return zero, false
		}
		n = next
	}

	return n.value, n.hasValue
}

// Len returns the number of paths carrying a value.
func (t *Trie[V]) Len() int { return t.size }
