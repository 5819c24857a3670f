// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the doctor command to show merged settings and their files

package config

import (
	"fmt"
	"sort"
	"strings"
)

// Explain renders a human-readable summary of the effective settings for
// projectRoot. Only non-zero values are shown.
func Explain(s *Settings, projectRoot string) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("=== Files ===\n")
	fmt.Fprintf(&b, "  Global:  %s\n", GlobalConfigFile())
	fmt.Fprintf(&b, "  Project: %s\n", ProjectConfigFile(projectRoot))
	b.WriteString("\n")

	b.WriteString("=== General ===\n")
	if s.FallbackManager != "" {
		fmt.Fprintf(&b, "  FallbackManager: %s\n", s.FallbackManager)
	}
	if s.LogLevel != "" {
		fmt.Fprintf(&b, "  LogLevel:        %s\n", s.LogLevel)
	}
	if s.PTY {
		b.WriteString("  PTY:             true\n")
	}

	if len(s.Commands) > 0 {
		b.WriteString("\n=== Commands ===\n")
		names := make([]string, 0, len(s.Commands))
		for name := range s.Commands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %-12s %s\n", name+":", strings.Join(s.Commands[name], " "))
		}
	}

	return b.String()
}
