package strutil

import (
	"strings"
	"unicode/utf8"
)

// defaultQuotes are the quote runes Unquote accepts when none are given.
var defaultQuotes = []rune{'"', '\''}

// IsQuoted reports whether s starts with a single or double quote and ends
// with the same rune. A lone quote character counts as quoted.
func IsQuoted(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	if first != '"' && first != '\'' {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(s)

	return first == last
}

// Unquote strips a matching pair of outer quotes from s. Only quote runes in
// quotes are honored; with none given, '"' and '\'' are used. If unescape is
// set, backslash-escaped occurrences of the quote rune inside are unescaped.
// s is returned unchanged when it is shorter than two runes, when its first
// and last runes differ, or when the first rune is not an accepted quote.
func Unquote(s string, unescape bool, quotes ...rune) string {
	if utf8.RuneCountInString(s) < 2 {
		return s
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if first != last {
		return s
	}
	if len(quotes) == 0 {
		quotes = defaultQuotes
	}
	if !containsRune(quotes, first) {
		return s
	}

	inner := Substring(s, 1, -1)
	if !unescape {
		return inner
	}
	q := string(first)

	return strings.ReplaceAll(inner, `\`+q, q)
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}

	return false
}
