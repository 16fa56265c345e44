// Package strings provides string matching utilities for free-text fields.
package strings

import (
	"strings"
)

// DedupeAndTrimLower normalizes keyword lists: each value is trimmed and
// lowercased, blanks and repeats are dropped, first occurrence wins.
// A nil or empty input comes back as is.
func DedupeAndTrimLower(values []string) []string {
	out := values[:0:0]
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

// ContainsAnyFold reports whether s contains any of the lowercase needles,
// ignoring case.
func ContainsAnyFold(s string, lowerNeedles []string) bool {
	lowered := strings.ToLower(s)
	for _, n := range lowerNeedles {
		if n != "" && strings.Contains(lowered, n) {
			return true
		}
	}
	return false
}

// EqualFoldTrim compares a and b ignoring case and surrounding whitespace.
func EqualFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
