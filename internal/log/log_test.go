// ABOUTME: Tests for the leveled logging package
// ABOUTME: Validates level filtering, parsing, and output redirection

package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// These tests touch package globals, so they do not run in parallel.

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"INFO":    "INFO",
		" warn ":  "WARN",
		"warning": "WARN",
		"error":   "ERROR",
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", in, err)
			continue
		}
		if got.String() != want {
			t.Errorf("ParseLevel(%q) = %v; want %s", in, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestFiltering(t *testing.T) {
	saved := GetLevel()
	var buf bytes.Buffer
	SetOutput(&buf)
	defer func() {
		SetLevel(saved)
		SetOutput(os.Stderr)
	}()

	SetLevel(LevelInfo)
	Debug("hidden %d", 1)
	Info("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug emitted at info level: %q", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "level=INFO") {
		t.Errorf("info missing from output: %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("time attribute should be dropped: %q", out)
	}

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("now %s", "visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug not emitted at debug level: %q", buf.String())
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	saved := GetLevel()
	var buf bytes.Buffer
	SetOutput(&buf)
	defer func() {
		SetLevel(saved)
		SetOutput(os.Stderr)
	}()

	SetLevel(LevelError)
	Warn("quiet")
	Error("loud: %d", 4)

	if strings.Contains(buf.String(), "quiet") {
		t.Errorf("warn emitted at error level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "loud: 4") {
		t.Errorf("error not emitted: %q", buf.String())
	}
}
