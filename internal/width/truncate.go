// ABOUTME: Column-aware truncation and padding for tabular CLI output
// ABOUTME: Never splits a grapheme cluster; truncated text ends in an ellipsis

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Truncate shortens s to at most maxWidth visible columns, replacing the
// tail with an ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}

	var b strings.Builder
	col := 0
	target := maxWidth - 1
	i := 0
	for i < len(s) && col < target {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	if strings.ContainsRune(s, '\x1b') {
		b.WriteString("\x1b[0m")
	}
	b.WriteString(ellipsis)
	return b.String()
}

// PadRight appends spaces until s is n columns wide.
func PadRight(s string, n int) string {
	if w := VisibleWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
