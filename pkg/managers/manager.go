// ABOUTME: Manager interface and the shared adapter that executes built argvs
// ABOUTME: Strict, soft and native forms all go through one argv builder per variant

package managers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	pilog "github.com/mauromedda/pkgjson/internal/log"
	"github.com/mauromedda/pkgjson/pkg/process"
)

// Manager drives one package manager in one project directory.
//
// The strict forms (Install, Add, Remove, Run) return *ExecutionError when
// the tool exits non-zero. The Try forms report that as false instead; their
// error is reserved for problems found before anything is spawned, such as
// an unsupported dependency type. The *Command forms return the argv the
// other forms would run.
type Manager interface {
	Name() Name
	Binary() string
	Dir() string

	Version(ctx context.Context) (string, error)

	Install(ctx context.Context, opts Options) error
	TryInstall(ctx context.Context, opts Options) (bool, error)
	InstallCommand(opts Options) (process.Command, error)

	Add(ctx context.Context, packages []string, opts Options) error
	TryAdd(ctx context.Context, packages []string, opts Options) (bool, error)
	AddCommand(packages []string, opts Options) (process.Command, error)

	Remove(ctx context.Context, packages []string, opts Options) error
	TryRemove(ctx context.Context, packages []string, opts Options) (bool, error)
	RemoveCommand(packages []string, opts Options) (process.Command, error)

	Run(ctx context.Context, script string, args []string, opts Options) error
	TryRun(ctx context.Context, script string, args []string, opts Options) (bool, error)
	RunCommand(script string, args []string, opts Options) (process.Command, error)

	// ExecCommand returns the argv that runs an installed binary.
	ExecCommand(ctx context.Context, bin string, args []string) (process.Command, error)
}

// builder produces the tool arguments (without the binary) for a variant.
type builder interface {
	installArgs(o Options) ([]string, error)
	addArgs(packages []string, o Options) ([]string, error)
	removeArgs(packages []string, o Options) ([]string, error)
	runArgs(script string, args []string, o Options) ([]string, error)
	execCommand(ctx context.Context, a *adapter, bin string, args []string) (process.Command, error)
}

// Option customizes an adapter.
type Option func(*adapter)

// WithCommand launches the manager through prefix instead of its bare
// binary, e.g. []string{"npx", "-y", "yarn@1"}.
func WithCommand(prefix ...string) Option {
	return func(a *adapter) {
		if len(prefix) > 0 {
			a.prefix = append([]string(nil), prefix...)
		}
	}
}

// WithRunner replaces the default os/exec runner.
func WithRunner(r process.Runner) Option {
	return func(a *adapter) {
		if r != nil {
			a.runner = r
		}
	}
}

type adapter struct {
	name   Name
	binary string
	prefix []string
	dir    string
	runner process.Runner
	build  builder
}

// New returns the adapter for name, bound to dir. dir is made absolute so
// later changes to the caller's working directory have no effect.
func New(name Name, dir string, opts ...Option) (Manager, error) {
	var b builder
	switch name {
	case NPM:
		b = npm{}
	case YarnClassic:
		b = yarnClassic{}
	case YarnBerry:
		b = yarnBerry{}
	case PNPM:
		b = pnpm{}
	case Bun:
		b = bun{}
	default:
		return nil, unsupportedManager(string(name))
	}
	return newAdapter(name, name.Binary(), dir, b, opts)
}

// NewBase returns an adapter for binary that implements nothing beyond
// Version. Every other operation fails with ErrUnimplemented; it is the
// reference point for checking new adapters.
func NewBase(binary, dir string, opts ...Option) (Manager, error) {
	return newAdapter(Name(binary), binary, dir, unimplemented{}, opts)
}

func newAdapter(name Name, binary, dir string, b builder, opts []Option) (*adapter, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	a := &adapter{
		name:   name,
		binary: binary,
		prefix: []string{binary},
		dir:    abs,
		runner: process.NewExecRunner(),
		build:  b,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *adapter) Name() Name     { return a.name }
func (a *adapter) Binary() string { return a.binary }
func (a *adapter) Dir() string    { return a.dir }

// command prepends the manager prefix to args.
func (a *adapter) command(args ...string) process.Command {
	argv := make([]string, 0, len(a.prefix)+len(args))
	argv = append(argv, a.prefix...)
	argv = append(argv, args...)
	return process.Command{Args: argv, Dir: a.dir}
}

func (a *adapter) dispatch(ctx context.Context, args []string) error {
	cmd := a.command(args...)
	pilog.Debug("%s: running %s", a.name, cmd)
	if err := a.runner.Execute(ctx, cmd); err != nil {
		pilog.Debug("%s: %v", a.name, err)
		return err
	}
	return nil
}

func (a *adapter) strict(ctx context.Context, args []string, err error) error {
	if err != nil {
		return err
	}
	return a.dispatch(ctx, args)
}

func (a *adapter) soft(ctx context.Context, args []string, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	return a.dispatch(ctx, args) == nil, nil
}

func (a *adapter) native(args []string, err error) (process.Command, error) {
	if err != nil {
		return process.Command{}, err
	}
	return a.command(args...), nil
}

// Version runs "<binary> --version" and returns the trimmed output.
func (a *adapter) Version(ctx context.Context) (string, error) {
	cmd := a.command("--version")
	res, err := a.runner.Capture(ctx, cmd)
	if err != nil {
		return "", err
	}
	if !res.Success() {
		return "", &ExecutionError{Args: cmd.Args, Code: res.ExitCode, Stderr: res.Stderr}
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (a *adapter) Install(ctx context.Context, o Options) error {
	args, err := a.build.installArgs(o)
	return a.strict(ctx, args, err)
}

func (a *adapter) TryInstall(ctx context.Context, o Options) (bool, error) {
	args, err := a.build.installArgs(o)
	return a.soft(ctx, args, err)
}

func (a *adapter) InstallCommand(o Options) (process.Command, error) {
	return a.native(a.build.installArgs(o))
}

func (a *adapter) Add(ctx context.Context, packages []string, o Options) error {
	args, err := a.build.addArgs(packages, o)
	return a.strict(ctx, args, err)
}

func (a *adapter) TryAdd(ctx context.Context, packages []string, o Options) (bool, error) {
	args, err := a.build.addArgs(packages, o)
	return a.soft(ctx, args, err)
}

func (a *adapter) AddCommand(packages []string, o Options) (process.Command, error) {
	return a.native(a.build.addArgs(packages, o))
}

func (a *adapter) Remove(ctx context.Context, packages []string, o Options) error {
	args, err := a.build.removeArgs(packages, o)
	return a.strict(ctx, args, err)
}

func (a *adapter) TryRemove(ctx context.Context, packages []string, o Options) (bool, error) {
	args, err := a.build.removeArgs(packages, o)
	return a.soft(ctx, args, err)
}

func (a *adapter) RemoveCommand(packages []string, o Options) (process.Command, error) {
	return a.native(a.build.removeArgs(packages, o))
}

func (a *adapter) Run(ctx context.Context, script string, args []string, o Options) error {
	argv, err := a.build.runArgs(script, args, o)
	return a.strict(ctx, argv, err)
}

func (a *adapter) TryRun(ctx context.Context, script string, args []string, o Options) (bool, error) {
	argv, err := a.build.runArgs(script, args, o)
	return a.soft(ctx, argv, err)
}

func (a *adapter) RunCommand(script string, args []string, o Options) (process.Command, error) {
	return a.native(a.build.runArgs(script, args, o))
}

func (a *adapter) ExecCommand(ctx context.Context, bin string, args []string) (process.Command, error) {
	return a.build.execCommand(ctx, a, bin, args)
}

// unimplemented is the builder behind NewBase.
type unimplemented struct{}

func (unimplemented) installArgs(Options) ([]string, error) {
	return nil, fmt.Errorf("install: %w", ErrUnimplemented)
}

func (unimplemented) addArgs([]string, Options) ([]string, error) {
	return nil, fmt.Errorf("add: %w", ErrUnimplemented)
}

func (unimplemented) removeArgs([]string, Options) ([]string, error) {
	return nil, fmt.Errorf("remove: %w", ErrUnimplemented)
}

func (unimplemented) runArgs(string, []string, Options) ([]string, error) {
	return nil, fmt.Errorf("run: %w", ErrUnimplemented)
}

func (unimplemented) execCommand(context.Context, *adapter, string, []string) (process.Command, error) {
	return process.Command{}, fmt.Errorf("exec: %w", ErrUnimplemented)
}
