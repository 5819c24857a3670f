// ABOUTME: Session binding a project directory, its package.json and one manager
// ABOUTME: The manager is resolved once from packageManager (or the fallback) at open time

package packagejson

import (
	"context"
	"fmt"
	"path/filepath"

	pilog "github.com/mauromedda/pkgjson/internal/log"
	"github.com/mauromedda/pkgjson/pkg/managers"
	"github.com/mauromedda/pkgjson/pkg/manifest"
	"github.com/mauromedda/pkgjson/pkg/process"
)

// Session is the entry point for working with one project. It holds no
// parsed manifest state; every manifest call goes back to disk.
type Session struct {
	dir     string
	store   *manifest.Store
	manager managers.Manager
	spec    managers.Spec
}

type config struct {
	fallback    managers.Name
	runner      process.Runner
	prefix      []string
	commands    map[managers.Name][]string
	hasFallback bool
}

// Option configures how a session is opened.
type Option func(*config)

// WithFallback sets the manager used when package.json declares none. Without
// it the PACKAGE_JSON_FALLBACK_MANAGER variable is consulted, then npm.
func WithFallback(name managers.Name) Option {
	return func(c *config) {
		c.fallback = name
		c.hasFallback = name != ""
	}
}

// WithRunner sets the process runner handed to the manager.
func WithRunner(r process.Runner) Option {
	return func(c *config) { c.runner = r }
}

// WithCommandPrefix launches the manager through prefix instead of its binary.
func WithCommandPrefix(prefix ...string) Option {
	return func(c *config) { c.prefix = prefix }
}

// WithCommands supplies launch prefixes per manager; the one matching the
// resolved manager is used. WithCommandPrefix takes precedence.
func WithCommands(commands map[managers.Name][]string) Option {
	return func(c *config) { c.commands = commands }
}

// Read opens an existing project. It fails with manifest.ErrNotFound when dir
// has no package.json.
func Read(ctx context.Context, dir string, opts ...Option) (*Session, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	store, err := manifest.Open(abs)
	if err != nil {
		return nil, err
	}
	return open(abs, store, opts)
}

// New opens a project, creating an empty package.json when there is none.
// When it creates the file it also records the resolved manager and its
// version under packageManager; an existing manifest is never touched.
func New(ctx context.Context, dir string, opts ...Option) (*Session, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	store, created, err := manifest.Ensure(abs)
	if err != nil {
		return nil, err
	}

	s, err := open(abs, store, opts)
	if err != nil {
		return nil, err
	}
	if created {
		pilog.Debug("created %s", store.Path())
		if err := s.RecordPackageManager(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func open(dir string, store *manifest.Store, opts []Option) (*Session, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasFallback {
		fb, err := managers.DefaultFallback()
		if err != nil {
			return nil, err
		}
		cfg.fallback = fb
	}

	declared, err := declaredManager(store)
	if err != nil {
		return nil, err
	}
	spec, err := managers.Resolve(declared, cfg.fallback)
	if err != nil {
		return nil, err
	}

	var mopts []managers.Option
	if cfg.runner != nil {
		mopts = append(mopts, managers.WithRunner(cfg.runner))
	}
	prefix := cfg.prefix
	if len(prefix) == 0 {
		prefix = cfg.commands[spec.Name]
	}
	if len(prefix) > 0 {
		mopts = append(mopts, managers.WithCommand(prefix...))
	}
	m, err := managers.New(spec.Name, dir, mopts...)
	if err != nil {
		return nil, err
	}
	pilog.Debug("%s: using %s", dir, spec.Name)

	return &Session{dir: dir, store: store, manager: m, spec: spec}, nil
}

// declaredManager returns the packageManager value, or "" when absent.
func declaredManager(store *manifest.Store) (string, error) {
	v, err := store.FetchOr(managers.ManifestKey, nil)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %s must be a string, got %T", store.Path(), managers.ManifestKey, v)
	}
	return s, nil
}

// Dir returns the absolute project directory.
func (s *Session) Dir() string { return s.dir }

// Manager returns the adapter resolved when the session was opened.
func (s *Session) Manager() managers.Manager { return s.manager }

// Spec returns the resolution that selected the manager.
func (s *Session) Spec() managers.Spec { return s.spec }

// Store returns the underlying manifest store.
func (s *Session) Store() *manifest.Store { return s.store }

// Fetch returns the value under key or a *manifest.KeyNotFoundError.
func (s *Session) Fetch(key string) (any, error) {
	return s.store.Fetch(key)
}

// FetchOr returns the value under key, or def when it is absent.
func (s *Session) FetchOr(key string, def any) (any, error) {
	return s.store.FetchOr(key, def)
}

// Mutate re-reads package.json, applies fn in place and writes it back.
func (s *Session) Mutate(fn func(doc *manifest.Document) error) error {
	return s.store.Mutate(fn)
}

// Merge re-reads package.json and shallow-merges the partial fn builds from it.
func (s *Session) Merge(fn func(current *manifest.Document) (*manifest.Document, error)) error {
	return s.store.Merge(fn)
}

// MergeShallow shallow-merges partial into package.json.
func (s *Session) MergeShallow(partial *manifest.Document) error {
	return s.store.MergeShallow(partial)
}

// Delete removes key and returns its previous value, if any.
func (s *Session) Delete(key string) (any, bool, error) {
	return s.store.Delete(key)
}

// RecordPackageManager writes packageManager as "<binary>@<version>", asking
// the tool for its version.
func (s *Session) RecordPackageManager(ctx context.Context) error {
	version, err := s.manager.Version(ctx)
	if err != nil {
		return fmt.Errorf("recording %s: %w", managers.ManifestKey, err)
	}
	partial := manifest.New()
	partial.Set(managers.ManifestKey, s.manager.Binary()+"@"+version)
	return s.store.MergeShallow(partial)
}
