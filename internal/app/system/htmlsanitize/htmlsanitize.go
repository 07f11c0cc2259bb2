// Package htmlsanitize strips markup from free-text fields before they are
// persisted. Stored values are plain text; clients render them however they
// like.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag; script and style contents are dropped.
var strict = bluemonday.StrictPolicy()

// StripTags removes all HTML from s and returns plain text. Entities that
// the policy escapes are decoded again so "Tom & Jerry" survives intact.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}

// IsPlainText reports whether s contains nothing that looks like a tag.
func IsPlainText(s string) bool {
	return !strings.Contains(s, "<") || !strings.Contains(s, ">")
}

// StripFields applies StripTags in place to the named string fields of a
// decoded JSON payload. Missing or non-string fields are left alone.
func StripFields(payload map[string]any, fields ...string) {
	for _, f := range fields {
		if v, ok := payload[f].(string); ok && !IsPlainText(v) {
			payload[f] = StripTags(v)
		}
	}
}
