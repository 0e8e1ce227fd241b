// Package trie implements a token trie for "most specific prefix" lookups,
// the kind a router needs when both /a and /a/b have handlers and a request
// for /a/b/c must land on /a/b.
//
// What:
//
//   - Insert attaches a value to the node reached by a token path, creating
//     nodes as needed; values may sit at any depth, including the root.
//   - FindLongestMatch walks a query path from the root, remembers the last
//     value seen on the way down and stops at the first token without a
//     matching child.
//   - LongestMatch does the same walk and also reports how many tokens the
//     matched prefix used.
//   - Get is an exact lookup with no fallback.
//
// The walk never backtracks and never looks at sibling branches: for a query
// [a x y] only the nodes a, a/x and a/x/y are ever considered, even if some
// other insertion shares a longer prefix elsewhere.
//
// Tokens are plain strings; splitting a raw path into tokens is left to the
// caller (see strutil.PathNodes, which prefixes every path with a "/" root
// token).
//
// Concurrency: a Trie has a single-writer model. Concurrent lookups are safe
// while nothing inserts.
//
// Complexity:
//
//   - Insert:                 O(len(path))
//   - FindLongestMatch / Get: O(min(len(path), depth))
//   - Memory:                 one node per distinct prefix
package trie
