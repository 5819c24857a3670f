// ABOUTME: Tests for packageManager resolution and fallback selection
// ABOUTME: Covers the yarn classic/berry split, including majors like 11

package managers

import (
	"errors"
	"strings"
	"testing"
)

func TestResolve_Undeclared(t *testing.T) {
	t.Parallel()

	for _, fallback := range Names() {
		got, err := Resolve("", fallback)
		if err != nil {
			t.Fatalf("Resolve(\"\", %s): %v", fallback, err)
		}
		if got.Name != fallback || got.DeclaredVersion != "" {
			t.Errorf("Resolve(\"\", %s) = %+v; want fallback unchanged", fallback, got)
		}
	}
}

func TestResolve_Yarn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		declared string
		want     Name
	}{
		{"yarn@1", YarnClassic},
		{"yarn@1.2.3", YarnClassic},
		{"yarn@^1.2", YarnClassic},
		{"yarn@~1.2", YarnClassic},
		{"yarn@1.22.19+sha224.abcdef", YarnClassic},
		{"yarn@2.3.2", YarnBerry},
		{"yarn@3", YarnBerry},
		{"yarn@11.2.3", YarnBerry},
		{"yarn@~11.2.3", YarnBerry},
		{"yarn@^10", YarnBerry},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.declared, NPM)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.declared, err)
			continue
		}
		if got.Name != tt.want {
			t.Errorf("Resolve(%q) = %s; want %s", tt.declared, got.Name, tt.want)
		}
	}
}

func TestResolve_YarnWithoutVersion(t *testing.T) {
	t.Parallel()

	for _, declared := range []string{"yarn", "yarn@", "yarn@latest", "yarn@^"} {
		_, err := Resolve(declared, NPM)
		if !errors.Is(err, ErrVersionConstraint) {
			t.Errorf("Resolve(%q) err = %v; want ErrVersionConstraint", declared, err)
		}
	}

	_, err := Resolve("yarn", NPM)
	if !strings.Contains(err.Error(), "a major version must be present for Yarn") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestResolve_DirectNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		declared    string
		wantName    Name
		wantVersion string
	}{
		{"npm@9.8.1", NPM, "9.8.1"},
		{"pnpm@8.15.0", PNPM, "8.15.0"},
		{"bun@1.1.0", Bun, "1.1.0"},
		{"pnpm", PNPM, ""},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.declared, YarnBerry)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.declared, err)
			continue
		}
		if got.Name != tt.wantName || got.DeclaredVersion != tt.wantVersion {
			t.Errorf("Resolve(%q) = %+v; want {%s %s}", tt.declared, got, tt.wantName, tt.wantVersion)
		}
	}
}

func TestResolve_Unsupported(t *testing.T) {
	t.Parallel()

	for _, declared := range []string{"deno@1.0.0", "yarn_classic@1", "@1.0.0"} {
		_, err := Resolve(declared, NPM)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("Resolve(%q) err = %v; want ErrUnsupported", declared, err)
		}
	}
}

func TestParseName(t *testing.T) {
	t.Parallel()

	for _, n := range Names() {
		got, err := ParseName(" " + string(n) + " ")
		if err != nil || got != n {
			t.Errorf("ParseName(%q) = %q, %v", n, got, err)
		}
	}

	_, err := ParseName("pnp")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v; want ErrUnsupported", err)
	}
	if !strings.Contains(err.Error(), `did you mean "pnpm"`) {
		t.Errorf("message = %q; want a pnpm suggestion", err.Error())
	}
}

func TestName_Binary(t *testing.T) {
	t.Parallel()

	want := map[Name]string{NPM: "npm", YarnClassic: "yarn", YarnBerry: "yarn", PNPM: "pnpm", Bun: "bun"}
	for n, bin := range want {
		if got := n.Binary(); got != bin {
			t.Errorf("%s.Binary() = %q; want %q", n, got, bin)
		}
	}
}

func TestDefaultFallback(t *testing.T) {
	t.Setenv(FallbackEnv, "")
	got, err := DefaultFallback()
	if err != nil || got != NPM {
		t.Errorf("DefaultFallback() = %q, %v; want npm", got, err)
	}

	t.Setenv(FallbackEnv, "yarn_berry")
	got, err = DefaultFallback()
	if err != nil || got != YarnBerry {
		t.Errorf("DefaultFallback() = %q, %v; want yarn_berry", got, err)
	}

	t.Setenv(FallbackEnv, "yarn")
	if _, err := DefaultFallback(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("DefaultFallback() err = %v; want ErrUnsupported", err)
	}
}
