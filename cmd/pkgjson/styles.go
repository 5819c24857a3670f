// ABOUTME: Terminal styling for CLI output via lipgloss
// ABOUTME: Colors only when writing to a TTY; widths come from golang.org/x/term

package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultWidth = 100

// renderer returns a lipgloss renderer bound to w. Non-terminal writers get
// plain text.
func renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w, or defaultWidth when w is not
// a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return defaultWidth
}

func errorStyle(w io.Writer) lipgloss.Style {
	return renderer(w).NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
}

func warnStyle(w io.Writer) lipgloss.Style {
	return renderer(w).NewStyle().Foreground(lipgloss.Color("3"))
}

func keyStyle(w io.Writer) lipgloss.Style {
	return renderer(w).NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
}

func dimStyle(w io.Writer) lipgloss.Style {
	return renderer(w).NewStyle().Faint(true)
}

// renderDiff colors a unified diff: added lines green, removed red, headers
// cyan, hunks magenta.
func renderDiff(w io.Writer, diff string) string {
	if diff == "" {
		return ""
	}
	r := renderer(w)
	added := r.NewStyle().Foreground(lipgloss.Color("2"))
	removed := r.NewStyle().Foreground(lipgloss.Color("1"))
	header := r.NewStyle().Foreground(lipgloss.Color("6"))
	hunk := r.NewStyle().Foreground(lipgloss.Color("5"))

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	var b strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
			b.WriteString(header.Render(line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(hunk.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(added.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(removed.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
