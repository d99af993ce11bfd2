// Package search implements the dashboard's free-text collection filter:
// a pure, case-insensitive substring match over a fixed set of fields per
// entity type.
package search

import "strings"

// Matcher is implemented by entities that expose their searchable fields.
type Matcher interface {
	SearchFields() []string
}

// Filter returns the subsequence of items where at least one field reported
// by fields contains query, case-insensitively. An empty query returns items
// unchanged. The input slice is never mutated.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)

	var out []T
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Match reports whether a single entity matches the query against its own
// declared fields.
func Match(m Matcher, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range m.SearchFields() {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
