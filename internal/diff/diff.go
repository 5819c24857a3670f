// ABOUTME: Unified diff generation over go-difflib
// ABOUTME: Previews manifest edits before they are written

package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of unchanged lines shown around each change.
const DefaultContext = 3

// Unified returns a unified diff between before and after, labelled a/path
// and b/path. Identical inputs produce "".
func Unified(path, before, after string) string {
	if before == after {
		return ""
	}
	u := difflib.UnifiedDiff{
		A:        splitLines(before),
		B:        splitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  DefaultContext,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return ""
	}
	return s
}

// splitLines keeps each line's newline so hunks reproduce the input exactly.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
