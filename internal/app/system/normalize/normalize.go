// Package normalize canonicalizes user-supplied strings before they are
// stored or compared.
package normalize

import "strings"

// Email trims and lowercases an email address so uniqueness checks are
// case-insensitive.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a raw query-string value.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
