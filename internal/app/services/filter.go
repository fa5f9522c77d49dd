package services

import "strings"

// Matcher is a case-insensitive substring predicate over selected string
// fields of a record. An empty query matches every record.
type Matcher[T any] struct {
	needle string
	fields []func(T) string
}

// NewMatcher builds a matcher for query over the given field selectors
func NewMatcher[T any](query string, fields ...func(T) string) Matcher[T] {
	return Matcher[T]{
		needle: strings.ToLower(strings.TrimSpace(query)),
		fields: fields,
	}
}

// Match reports whether any selected field contains the query
func (m Matcher[T]) Match(v T) bool {
	if m.needle == "" {
		return true
	}
	for _, field := range m.fields {
		if strings.Contains(strings.ToLower(field(v)), m.needle) {
			return true
		}
	}
	return false
}

// Filter keeps the records that match, preserving order
func Filter[T any](records []T, m Matcher[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if m.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
