// ABOUTME: Closed set of supported package managers and fallback selection
// ABOUTME: Fallback comes from an explicit value or PACKAGE_JSON_FALLBACK_MANAGER

package managers

import (
	"fmt"
	"os"
	"strings"

	"github.com/mauromedda/pkgjson/internal/suggest"
)

// Name identifies one manager variant.
type Name string

const (
	NPM         Name = "npm"
	YarnClassic Name = "yarn_classic"
	YarnBerry   Name = "yarn_berry"
	PNPM        Name = "pnpm"
	Bun         Name = "bun"
)

// FallbackEnv names the environment variable consulted when a manifest does
// not declare a manager and no explicit fallback was given.
const FallbackEnv = "PACKAGE_JSON_FALLBACK_MANAGER"

// Names returns every supported manager in a stable order.
func Names() []Name {
	return []Name{NPM, YarnClassic, YarnBerry, PNPM, Bun}
}

// Binary returns the executable the variant drives.
func (n Name) Binary() string {
	switch n {
	case YarnClassic, YarnBerry:
		return "yarn"
	}
	return string(n)
}

// Valid reports whether n is one of the supported variants.
func (n Name) Valid() bool {
	for _, known := range Names() {
		if n == known {
			return true
		}
	}
	return false
}

// ParseName validates a manager identifier such as "pnpm" or "yarn_berry".
func ParseName(s string) (Name, error) {
	n := Name(strings.TrimSpace(s))
	if n.Valid() {
		return n, nil
	}
	return "", unsupportedManager(string(n))
}

// DefaultFallback returns the manager named by PACKAGE_JSON_FALLBACK_MANAGER,
// or npm when the variable is unset or empty.
func DefaultFallback() (Name, error) {
	v := os.Getenv(FallbackEnv)
	if v == "" {
		return NPM, nil
	}
	n, err := ParseName(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", FallbackEnv, err)
	}
	return n, nil
}

func unsupportedManager(name string) error {
	candidates := []string{"npm", "yarn", "pnpm", "bun"}
	for _, n := range Names() {
		candidates = append(candidates, string(n))
	}
	if best := suggest.Closest(name, candidates); best != "" {
		return fmt.Errorf("%w package manager %q (did you mean %q?)", ErrUnsupported, name, best)
	}
	return fmt.Errorf("%w package manager %q", ErrUnsupported, name)
}
