// Package search matches free text queries against record fields.
package search

import (
	"strings"

	"github.com/ryanuber/go-glob"
)

// Match reports whether the query matches any of the fields. Matching is
// case-insensitive and finds the query anywhere in a field, "*" in the
// query matches any sequence of characters. An empty query matches
// everything.
func Match(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	pattern := "*" + query + "*"
	for _, field := range fields {
		if glob.Glob(pattern, strings.ToLower(field)) {
			return true
		}
	}
	return false
}
