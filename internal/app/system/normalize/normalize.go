// Package normalize provides small input-normalization helpers shared by
// handlers: trimming, lowercasing for identifiers, and query-param cleanup.
package normalize

import "strings"

// Email trims surrounding whitespace and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a URL query parameter value.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
