// ABOUTME: One options record shared by every adapter
// ABOUTME: Adapters read the fields their tool supports and ignore the rest

package managers

import "fmt"

// DependencyType selects the dependency group an added package lands in.
type DependencyType string

const (
	Production DependencyType = "production"
	Dev        DependencyType = "dev"
	Optional   DependencyType = "optional"
)

// ParseDependencyType validates a dependency type name. An empty string
// means Production.
func ParseDependencyType(s string) (DependencyType, error) {
	switch t := DependencyType(s); t {
	case "":
		return Production, nil
	case Production, Dev, Optional:
		return t, nil
	}
	return "", fmt.Errorf("%w package install type %q", ErrUnsupported, s)
}

// Options is passed unchanged to any adapter. A field the target tool cannot
// express is dropped without error.
type Options struct {
	Frozen           bool
	IgnoreScripts    bool
	LegacyPeerDeps   bool
	OmitOptionalDeps bool
	Silent           bool

	// Type and Exact are read by add only.
	Type  DependencyType
	Exact bool
}

// typeFlag maps a dependency type onto one of three flags; an empty flag
// means the tool's default group needs no flag.
func typeFlag(t DependencyType, prod, dev, optional string) (string, error) {
	switch t {
	case "", Production:
		return prod, nil
	case Dev:
		return dev, nil
	case Optional:
		return optional, nil
	}
	return "", fmt.Errorf("%w package install type %q", ErrUnsupported, t)
}

// flags is an argv under construction that skips empty and disabled tokens.
type flags []string

func (f *flags) add(tokens ...string) {
	for _, t := range tokens {
		if t != "" {
			*f = append(*f, t)
		}
	}
}

func (f *flags) addIf(cond bool, token string) {
	if cond {
		f.add(token)
	}
}

// raw appends tokens verbatim, empty ones included; used for packages and
// forwarded script arguments.
func (f *flags) raw(tokens ...string) {
	*f = append(*f, tokens...)
}
