// ABOUTME: Tests for dotted key paths and single-value encoding
// ABOUTME: Covers nested creation, type conflicts and value round trips

package manifest

import (
	"encoding/json"
	"testing"
)

func TestSplitPath(t *testing.T) {
	t.Parallel()

	keys, err := SplitPath("scripts.build")
	if err != nil || len(keys) != 2 || keys[0] != "scripts" || keys[1] != "build" {
		t.Errorf("SplitPath = %q, %v", keys, err)
	}
	for _, bad := range []string{"", ".", "a..b", "a."} {
		if _, err := SplitPath(bad); err == nil {
			t.Errorf("SplitPath(%q): expected error", bad)
		}
	}
}

func TestDocument_Paths(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"name": "app", "scripts": {"build": "tsc"}}`))
	if err != nil {
		t.Fatal(err)
	}

	if v, ok := doc.Lookup("scripts", "build"); !ok || v != "tsc" {
		t.Errorf("Lookup(scripts.build) = %v, %v", v, ok)
	}
	if _, ok := doc.Lookup("name", "first"); ok {
		t.Error("Lookup through a string should fail")
	}

	if err := doc.SetPath("vitest", "scripts", "test"); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if err := doc.SetPath(true, "publishConfig", "provenance"); err != nil {
		t.Fatalf("SetPath (new parent): %v", err)
	}
	if err := doc.SetPath("x", "name", "first"); err == nil {
		t.Error("SetPath through a string should fail")
	}

	if v, ok := doc.DeletePath("scripts", "build"); !ok || v != "tsc" {
		t.Errorf("DeletePath = %v, %v", v, ok)
	}
	if _, ok := doc.DeletePath("nope", "build"); ok {
		t.Error("DeletePath of a missing parent should report false")
	}

	got, err := Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"name\": \"app\",\n  \"scripts\": {\n    \"test\": \"vitest\"\n  },\n  \"publishConfig\": {\n    \"provenance\": true\n  }\n}\n"
	if string(got) != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{`"x"`, `"x"`},
		{`42`, `42`},
		{`1.50`, `1.50`},
		{`true`, `true`},
		{`null`, `null`},
		{`[]`, `[]`},
		{`{"b": 1, "a": [1, 2]}`, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}"},
	}
	for _, tt := range tests {
		v, err := ParseValue([]byte(tt.input))
		if err != nil {
			t.Errorf("ParseValue(%q): %v", tt.input, err)
			continue
		}
		got, err := RenderValue(v)
		if err != nil {
			t.Errorf("RenderValue(%q): %v", tt.input, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("round trip of %q = %q; want %q", tt.input, got, tt.want)
		}
	}

	if v, _ := ParseValue([]byte("7")); v != json.Number("7") {
		t.Errorf("ParseValue(7) = %#v; want json.Number", v)
	}
	for _, bad := range []string{"", "1.0.0", "my-app", "{"} {
		if _, err := ParseValue([]byte(bad)); err == nil {
			t.Errorf("ParseValue(%q): expected error", bad)
		}
	}
}
