package search

import "strings"

// Matches reports whether term occurs, ignoring case, in any of fields. An empty term
// matches everything.
func Matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Filter keeps the items whose searchable fields match term, preserving order. The
// input is never modified; an empty term returns a copy of all items.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(term, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}
