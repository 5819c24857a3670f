// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings,
// including every element of the command prefixes.
func ResolveEnvVars(s *Settings) {
	s.FallbackManager = expandEnv(s.FallbackManager)
	s.LogLevel = expandEnv(s.LogLevel)

	for name, prefix := range s.Commands {
		expanded := make([]string, len(prefix))
		for i, arg := range prefix {
			expanded[i] = expandEnv(arg)
		}
		s.Commands[name] = expanded
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
