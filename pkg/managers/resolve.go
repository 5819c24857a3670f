// ABOUTME: Resolves the packageManager field ("name@version") to a manager variant
// ABOUTME: Yarn major 1 is classic; every other major is berry (numeric, not prefix)

package managers

import (
	"fmt"
	"strconv"
	"strings"
)

// ManifestKey is the reserved package.json key declaring the manager.
const ManifestKey = "packageManager"

// Spec is the outcome of resolution. It is fixed for the lifetime of the
// adapter built from it.
type Spec struct {
	Name            Name
	DeclaredVersion string
}

// Resolve turns a declared "name@version" value into a Spec. An empty
// declaration means the manifest does not declare a manager, and fallback is
// returned unchanged.
func Resolve(declared string, fallback Name) (Spec, error) {
	if declared == "" {
		return Spec{Name: fallback}, nil
	}

	name, version, _ := strings.Cut(declared, "@")

	switch name {
	case "yarn":
		major, ok := majorVersion(version)
		if !ok {
			return Spec{}, fmt.Errorf("%s %q: %w", ManifestKey, declared, ErrVersionConstraint)
		}
		if major == 1 {
			return Spec{Name: YarnClassic, DeclaredVersion: version}, nil
		}
		return Spec{Name: YarnBerry, DeclaredVersion: version}, nil
	case "npm", "pnpm", "bun":
		return Spec{Name: Name(name), DeclaredVersion: version}, nil
	}
	return Spec{}, unsupportedManager(name)
}

// majorVersion extracts the leading major number from a version or range
// such as "1.22.19", "^1.2", "~11.2.3" or ">=4".
func majorVersion(token string) (int, bool) {
	token = strings.TrimLeft(token, "^~=<>v \t")

	end := 0
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	major, err := strconv.Atoi(token[:end])
	if err != nil {
		return 0, false
	}
	return major, true
}
