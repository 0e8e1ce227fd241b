// Package strutil holds small string helpers: quote detection and removal,
// rune-indexed substrings with negative offsets, prefix/suffix normalization
// and URL path segment handling.
//
// PathNodes is the tokenizer used with package trie: it splits a URL path on
// "/" into non-empty segments and prepends a "/" token standing for the root,
// so "/a//b/" becomes ["/", "a", "b"] and "" becomes ["/"].
//
// All functions are pure and safe for concurrent use.
package strutil
