package strutil

import "strings"

const (
	// PathSeparator separates URL path segments.
	PathSeparator = "/"
	// RootNode is the token PathNodes puts first to stand for the root.
	RootNode = PathSeparator
)

// PathNodes splits a URL path into trie tokens: RootNode followed by every
// non-empty segment between separators.
//
//	PathNodes("/cloud/instance/") // ["/", "cloud", "instance"]
//	PathNodes("/")                // ["/"]
func PathNodes(p string) []string {
	nodes := []string{RootNode}
	for _, seg := range strings.Split(p, PathSeparator) {
		if seg != "" {
			nodes = append(nodes, seg)
		}
	}

	return nodes
}

// EnsurePrefix returns s with prefix prepended unless it is already there.
func EnsurePrefix(s, prefix string) string {
	if strings.HasPrefix(s, prefix) {
		return s
	}

	return prefix + s
}

// EnsureSuffix returns s with suffix appended unless it is already there.
func EnsureSuffix(s, suffix string) string {
	if strings.HasSuffix(s, suffix) {
		return s
	}

	return s + suffix
}

// DropPrefix removes one leading prefix from s, if present.
func DropPrefix(s, prefix string) string {
	return strings.TrimPrefix(s, prefix)
}

// DropSuffix removes one trailing suffix from s, if present.
func DropSuffix(s, suffix string) string {
	return strings.TrimSuffix(s, suffix)
}

// JoinPathSegment appends segment to base with exactly one separator at the
// seam: base gets a trailing "/" if it lacks one, and one leading "/" is
// dropped from segment.
func JoinPathSegment(base, segment string) string {
	return EnsureSuffix(base, PathSeparator) + DropPrefix(segment, PathSeparator)
}

// JoinPathSegments folds JoinPathSegment over segments, left to right.
func JoinPathSegments(base string, segments ...string) string {
	url := base
	for _, seg := range segments {
		url = JoinPathSegment(url, seg)
	}

	return url
}
