// Package strutil holds small string-list helpers shared by config and policy code.
package strutil

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}
	return result
}

// SplitList splits comma separated values and applies DedupeAndTrim.
// Each element of values may itself hold several comma separated entries.
//
//	SplitList([]string{"/a/, /b/", "/a/"}) // []string{"/a/", "/b/"}
func SplitList(values ...string) []string {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, ",")...)
	}
	out := DedupeAndTrim(parts)
	if out == nil {
		return []string{}
	}
	return out
}

// PathPrefixes normalises URL path prefixes to start with "/". Entries are
// trimmed and deduplicated; blanks are dropped.
func PathPrefixes(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range DedupeAndTrim(values) {
		if !strings.HasPrefix(v, "/") {
			v = "/" + v
		}
		out = append(out, v)
	}
	return DedupeAndTrim(out)
}
