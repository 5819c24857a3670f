// ABOUTME: Stateless package.json store: every call re-reads the file from disk
// ABOUTME: Writes are atomic (temp file + rename); no locking, last write wins

package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the manifest file looked up inside a project directory.
const FileName = "package.json"

// ErrNotFound is returned by Open when the directory has no package.json.
var ErrNotFound = errors.New("package.json not found")

// KeyNotFoundError is returned by Fetch for an absent key.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %q", e.Key)
}

// Store reads and writes one package.json. It keeps only the path: the
// package manager being driven rewrites the file itself, so nothing parsed
// is ever reused across calls.
type Store struct {
	path string
}

// Open returns a store for dir/package.json, failing with ErrNotFound if the
// file does not exist.
func Open(dir string) (*Store, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotFound)
		}
		return nil, fmt.Errorf("checking manifest: %w", err)
	}
	return &Store{path: path}, nil
}

// Ensure returns a store for dir/package.json, creating an empty manifest
// when none exists. created reports whether the file was written.
func Ensure(dir string) (s *Store, created bool, err error) {
	s = &Store{path: filepath.Join(dir, FileName)}
	if _, err := os.Stat(s.path); err == nil {
		return s, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, fmt.Errorf("checking manifest: %w", err)
	}

	if err := s.Store(New()); err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// Path returns the manifest file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the manifest from disk.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", filepath.Dir(s.path), ErrNotFound)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return doc, nil
}

// Store serializes doc and replaces the manifest atomically.
func (s *Store) Store(doc *Document) error {
	data, err := Render(doc)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".package.json-*")
	if err != nil {
		return fmt.Errorf("creating temp manifest: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp manifest: %w", err)
	}

	// CreateTemp uses 0600; package.json is normally world readable.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting manifest mode: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp manifest: %w", err)
	}
	return nil
}

// Fetch returns the current value for key or a *KeyNotFoundError.
func (s *Store) Fetch(key string) (any, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	v, ok := doc.Get(key)
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return v, nil
}

// FetchOr returns the current value for key, or def when the key is absent.
func (s *Store) FetchOr(key string, def any) (any, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if v, ok := doc.Get(key); ok {
		return v, nil
	}
	return def, nil
}

// Mutate re-reads the manifest, lets fn change it in place and writes the
// result back. Nothing is written if fn returns an error.
func (s *Store) Mutate(fn func(doc *Document) error) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.Store(doc)
}

// Merge re-reads the manifest, asks fn for a partial document built from the
// current contents and merges it shallowly before writing back.
func (s *Store) Merge(fn func(current *Document) (*Document, error)) error {
	return s.Mutate(func(doc *Document) error {
		partial, err := fn(doc)
		if err != nil {
			return err
		}
		doc.MergeShallow(partial)
		return nil
	})
}

// MergeShallow merges partial into the top level of the manifest. A key in
// partial replaces the existing value wholesale.
func (s *Store) MergeShallow(partial *Document) error {
	return s.Merge(func(*Document) (*Document, error) {
		return partial, nil
	})
}

// Delete removes key and returns its previous value. When the key is absent
// the file is left untouched.
func (s *Store) Delete(key string) (any, bool, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, false, err
	}
	v, ok := doc.Delete(key)
	if !ok {
		return nil, false, nil
	}
	if err := s.Store(doc); err != nil {
		return nil, false, err
	}
	return v, true, nil
}
