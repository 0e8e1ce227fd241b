// Package rkutils is a small toolbox of in-memory helpers for working with
// dependency graphs, routing tables and path-like strings.
//
// What is inside?
//
//	topo/    — Kahn-style topological sort over a dependency map, with cycle
//	           reporting (the unresolved ids travel inside the error)
//	trie/    — token trie answering "which registered prefix matches this
//	           path best?" in a single pass
//	strutil/ — quoting, UTF-8 safe substrings and URL path segment helpers
//
// The packages share no state and can be imported on their own. The usual
// combination is strutil feeding trie:
//
//	t := trie.New[string]()
//	t.Insert(strutil.PathNodes("/cloud"), "cloud handler")
//	t.Insert(strutil.PathNodes("/"), "fallback")
//	h, _ := t.FindLongestMatch(strutil.PathNodes("/cloud/instance/42"))
//	// h == "cloud handler"
//
// Quick ASCII example of what topo.Sort does with {B:{A}, C:{B}, D:{A}}:
//
//	A ─► B ─► C
//	│
//	└──► D
//
// yields A first, C after B, and D anywhere after A.
//
// Nothing here performs I/O or starts goroutines.
//
//	go get github.com/rockie/rk-utils
package rkutils
