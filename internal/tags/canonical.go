// Package tags normalizes raw tag input and resolves it against a user's
// tag vocabulary. Tags are case-preserving but unique under case-insensitive
// comparison, so both steps compare lowercased forms.
package tags

import "strings"

const (
	MinTagLength = 3
	MaxTagLength = 20
)

// IsValidLength reports whether a trimmed tag is within the allowed length
func IsValidLength(tag string) bool {
	return len(tag) >= MinTagLength && len(tag) <= MaxTagLength
}

// Canonicalize normalizes a raw tag list: entries are trimmed, entries whose
// trimmed length is out of bounds are dropped, and case-insensitive
// duplicates are removed keeping the first surviving occurrence's casing.
// The result is idempotent: Canonicalize(Canonicalize(x)) == Canonicalize(x).
func Canonicalize(raw []string) []string {
	canonical := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, tag := range raw {
		trimmed := strings.TrimSpace(tag)
		if !IsValidLength(trimmed) {
			continue
		}

		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		canonical = append(canonical, trimmed)
	}

	return canonical
}

// ResolveAgainstVocabulary matches canonical tags against a vocabulary,
// case-insensitively. Matches come back in vocabulary casing, each at most
// once; unmatched tags are silently dropped. Callers that require at least
// one valid tag must treat an empty result from a non-empty input as an
// error — that check is deliberately not performed here.
func ResolveAgainstVocabulary(canonical []string, vocabulary []string) []string {
	byLower := make(map[string]string, len(vocabulary))
	for _, tag := range vocabulary {
		key := strings.ToLower(tag)
		if _, ok := byLower[key]; !ok {
			byLower[key] = tag
		}
	}

	resolved := make([]string, 0, len(canonical))
	taken := make(map[string]struct{}, len(canonical))

	for _, tag := range canonical {
		key := strings.ToLower(tag)
		match, ok := byLower[key]
		if !ok {
			continue
		}
		if _, dup := taken[key]; dup {
			continue
		}

		taken[key] = struct{}{}
		resolved = append(resolved, match)
	}

	return resolved
}
