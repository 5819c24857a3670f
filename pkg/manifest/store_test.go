// ABOUTME: Tests for the package.json store and its canonical codec
// ABOUTME: Covers fresh reads, shallow merge, delete, and byte-identical rewrites

package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func TestOpen_Missing(t *testing.T) {
	t.Parallel()

	_, err := Open(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}

func TestEnsure_CreatesEmptyManifest(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	s, created, err := Ensure(dir)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if !created {
		t.Error("expected created = true")
	}
	if got := readFile(t, s.Path()); got != "{}\n" {
		t.Errorf("content = %q; want %q", got, "{}\n")
	}

	_, created, err = Ensure(dir)
	if err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if created {
		t.Error("expected created = false for existing manifest")
	}
}

func TestFetch_ReadsFromDiskEveryTime(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "{\n  \"version\": \"1.0.0\"\n}\n")

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	v, err := s.Fetch("version")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if v != "1.0.0" {
		t.Errorf("version = %v; want 1.0.0", v)
	}

	if err := os.WriteFile(path, []byte(`{"version": "1.1.0"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	v, err = s.Fetch("version")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if v != "1.1.0" {
		t.Errorf("version = %v; want 1.1.0", v)
	}
}

func TestFetch_MissingKey(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "{}\n")
	s, _ := Open(dir)

	_, err := s.Fetch("does-not-exist")
	var keyErr *KeyNotFoundError
	if !errors.As(err, &keyErr) {
		t.Fatalf("err = %v; want *KeyNotFoundError", err)
	}
	if keyErr.Key != "does-not-exist" {
		t.Errorf("Key = %q; want %q", keyErr.Key, "does-not-exist")
	}

	v, err := s.FetchOr("does-not-exist", "default")
	if err != nil {
		t.Fatalf("FetchOr: %v", err)
	}
	if v != "default" {
		t.Errorf("FetchOr = %v; want default", v)
	}
}

func TestMutate_IdentityIsByteIdentical(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	content := `{
  "name": "example",
  "version": "1.0.0",
  "private": true,
  "size": 1.50,
  "big": 1e10,
  "files": [
    "lib",
    "bin"
  ],
  "scripts": {
    "test": "jest",
    "build": "tsc -p . && echo <done>"
  },
  "workspaces": [],
  "config": {},
  "nothing": null
}
`
	path := writeFile(t, dir, content)
	s, _ := Open(dir)

	if err := s.Mutate(func(*Document) error { return nil }); err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if got := readFile(t, path); got != content {
		t.Errorf("rewrite changed bytes:\ngot:\n%s\nwant:\n%s", got, content)
	}
}

func TestMutate_WritesInPlaceChanges(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "{\n  \"version\": \"1.0.0\",\n  \"scripts\": {\n    \"test\": \"exit 1\"\n  }\n}\n")
	s, _ := Open(dir)

	err := s.Mutate(func(doc *Document) error {
		scripts, ok := doc.Object("scripts")
		if !ok {
			t.Fatal("scripts is not an object")
		}
		scripts.Set("lint", "eslint . --ext js,ts")
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	want := `{
  "version": "1.0.0",
  "scripts": {
    "test": "exit 1",
    "lint": "eslint . --ext js,ts"
  }
}
`
	if got := readFile(t, path); got != want {
		t.Errorf("content =\n%s\nwant:\n%s", got, want)
	}
}

func TestMutate_ErrorSkipsWrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, `{"a": 1}`)
	s, _ := Open(dir)

	boom := errors.New("boom")
	err := s.Mutate(func(doc *Document) error {
		doc.Set("b", 2)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want boom", err)
	}
	if got := readFile(t, path); got != `{"a": 1}` {
		t.Errorf("file rewritten on error: %q", got)
	}
}

func TestMergeShallow_ReplacesNestedObjects(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "{\n  \"scripts\": {\n    \"test\": \"y\"\n  }\n}\n")
	s, _ := Open(dir)

	scripts := New()
	scripts.Set("lint", "x")
	partial := New()
	partial.Set("scripts", scripts)

	if err := s.MergeShallow(partial); err != nil {
		t.Fatalf("MergeShallow: %v", err)
	}

	want := "{\n  \"scripts\": {\n    \"lint\": \"x\"\n  }\n}\n"
	if got := readFile(t, path); got != want {
		t.Errorf("content = %q; want %q", got, want)
	}
}

func TestMerge_SeesFreshContents(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, `{"name": "a"}`)
	s, _ := Open(dir)

	// Simulate the package manager rewriting the file after Open.
	if err := os.WriteFile(path, []byte(`{"name": "b"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := s.Merge(func(current *Document) (*Document, error) {
		name, _ := current.String("name")
		p := New()
		p.Set("description", "from "+name)
		return p, nil
	})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	want := "{\n  \"name\": \"b\",\n  \"description\": \"from b\"\n}\n"
	if got := readFile(t, path); got != want {
		t.Errorf("content = %q; want %q", got, want)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "{\n  \"a\": \"1\",\n  \"b\": \"2\"\n}\n")
	s, _ := Open(dir)

	v, ok, err := s.Delete("a")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !ok || v != "1" {
		t.Errorf("Delete = (%v, %v); want (1, true)", v, ok)
	}
	if got := readFile(t, path); got != "{\n  \"b\": \"2\"\n}\n" {
		t.Errorf("content = %q", got)
	}
}

func TestDelete_AbsentKeyLeavesFileUntouched(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// Deliberately non-canonical so any rewrite would show.
	content := `{"a":"1"}`
	path := writeFile(t, dir, content)
	s, _ := Open(dir)

	v, ok, err := s.Delete("missing")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok || v != nil {
		t.Errorf("Delete = (%v, %v); want (nil, false)", v, ok)
	}
	if got := readFile(t, path); got != content {
		t.Errorf("content = %q; want %q", got, content)
	}
}

func TestParse_RejectsNonObjects(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "[]", `"str"`, "{", `{"a": 1} trailing`} {
		if _, err := Parse([]byte(input)); err == nil {
			t.Errorf("Parse(%q): expected error", input)
		}
	}
}

func TestRender_GoValues(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.Set("count", 3)
	doc.Set("ratio", 0.5)
	doc.Set("tags", []string{"a", "b"})
	doc.Set("deps", map[string]any{"z": "1", "a": "2"})
	doc.Set("n", json.Number("10"))

	got, err := Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := `{
  "count": 3,
  "ratio": 0.5,
  "tags": [
    "a",
    "b"
  ],
  "deps": {
    "a": "2",
    "z": "1"
  },
  "n": 10
}
`
	if string(got) != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

func TestDocument_DeleteKeepsOrder(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.Set("a", 1)
	doc.Set("b", 2)
	doc.Set("c", 3)
	doc.Delete("b")
	doc.Set("a", 10)

	keys := doc.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Errorf("Keys = %v; want [a c]", keys)
	}
}
