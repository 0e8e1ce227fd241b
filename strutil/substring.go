package strutil

// Substring returns the runes of s in [start, end).
//
// A negative start counts back from the end of s. An end <= 0 also counts
// back from the end, so end == 0 means "up to the end" and end == -1 drops
// the last rune. Out-of-range indices are clamped; if start ends up past end
// the result is "".
//
//	Substring("Hello, World!", 0, 5)   // "Hello"
//	Substring("Hello, World!", -6, -1) // "World"
//	Substring("Hello, World!", 7, 0)   // "World!"
func Substring(s string, start, end int) string {
	rs := []rune(s)
	n := len(rs)
	if start < 0 {
		start += n
	}
	if end <= 0 {
		end += n
	}
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if start > end {
		return ""
	}

	return string(rs[start:end])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
