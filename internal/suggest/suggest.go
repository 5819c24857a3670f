// ABOUTME: "Did you mean" suggestions over sahilm/fuzzy
// ABOUTME: Used for unknown script names and unsupported manager identifiers

package suggest

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Find returns candidates matching pattern, best first, at most limit
// entries (limit <= 0 means no limit). An empty pattern matches nothing.
func Find(pattern string, candidates []string, limit int) []string {
	if strings.TrimSpace(pattern) == "" || len(candidates) == 0 {
		return nil
	}

	matches := fuzzy.Find(pattern, candidates)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Str == pattern {
			continue
		}
		out = append(out, m.Str)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Closest returns the single best candidate for pattern, or "" when nothing
// is close. Besides fuzzy subsequence matches it also catches a pattern that
// has extra characters, like "npmm" for "npm".
func Closest(pattern string, candidates []string) string {
	if found := Find(pattern, candidates, 1); len(found) > 0 {
		return found[0]
	}

	best, bestScore := "", 0
	for _, c := range candidates {
		if c == "" || c == pattern {
			continue
		}
		m := fuzzy.Find(c, []string{pattern})
		if len(m) == 0 {
			continue
		}
		if best == "" || len(c) > len(best) || (len(c) == len(best) && m[0].Score > bestScore) {
			best, bestScore = c, m[0].Score
		}
	}
	return best
}
