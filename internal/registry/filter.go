package registry

import (
	"path"
	"strings"
)

// Match reports whether a test name matches a wildcard pattern.
// Supports patterns like "parse*" or "*config*". An empty pattern matches
// everything and a pattern without wildcards matches by substring.
func Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// path.Match supports * and ? wildcards
	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}

	// Flexible fallback for patterns like "*load*file*": every non-empty part
	// must occur in the name, in any order.
	if strings.Contains(pattern, "*") {
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			if !strings.Contains(name, part) {
				return false
			}
			hasNonEmptyPart = true
		}
		return hasNonEmptyPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}

// FilterByName keeps the names matching pattern, in their original order.
func FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	var filtered []string
	for _, name := range names {
		if Match(name, pattern) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
