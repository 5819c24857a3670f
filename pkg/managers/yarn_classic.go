// ABOUTME: Yarn 1.x adapter; exec resolves binaries through "yarn bin"
// ABOUTME: legacy-peer-deps has no yarn equivalent and is dropped

package managers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/mauromedda/pkgjson/internal/width"
	"github.com/mauromedda/pkgjson/pkg/process"
)

type yarnClassic struct{}

func (yarnClassic) common(f *flags, o Options) {
	f.addIf(o.IgnoreScripts, "--ignore-scripts")
	f.addIf(o.OmitOptionalDeps, "--ignore-optional")
}

func (y yarnClassic) installArgs(o Options) ([]string, error) {
	f := flags{"install"}
	f.addIf(o.Silent, "--silent")
	f.addIf(o.Frozen, "--frozen-lockfile")
	y.common(&f, o)
	return f, nil
}

func (y yarnClassic) addArgs(packages []string, o Options) ([]string, error) {
	group, err := typeFlag(o.Type, "", "--dev", "--optional")
	if err != nil {
		return nil, err
	}
	f := flags{"add"}
	f.addIf(o.Silent, "--silent")
	f.add(group)
	f.addIf(o.Exact, "--exact")
	y.common(&f, o)
	f.raw(packages...)
	return f, nil
}

func (y yarnClassic) removeArgs(packages []string, o Options) ([]string, error) {
	f := flags{"remove"}
	f.addIf(o.Silent, "--silent")
	y.common(&f, o)
	f.raw(packages...)
	return f, nil
}

func (yarnClassic) runArgs(script string, args []string, o Options) ([]string, error) {
	f := flags{"run"}
	f.addIf(o.Silent, "--silent")
	f.raw(script)
	f.raw(args...)
	return f, nil
}

// execCommand asks yarn where binaries live and points straight at bin.
func (yarnClassic) execCommand(ctx context.Context, a *adapter, bin string, args []string) (process.Command, error) {
	dir, err := binDir(ctx, a)
	if err != nil {
		return process.Command{}, err
	}
	argv := append([]string{filepath.Join(dir, bin)}, args...)
	return process.Command{Args: argv, Dir: a.dir}, nil
}

func binDir(ctx context.Context, a *adapter) (string, error) {
	cmd := a.command("bin")
	res, err := a.runner.Capture(ctx, cmd)
	if err != nil {
		return "", err
	}
	if !res.Success() {
		return "", &ExecutionError{Args: cmd.Args, Code: res.ExitCode, Stderr: res.Stderr}
	}
	// Wrappers such as concurrently or a pty inject control sequences
	// (e.g. "\x1b[2K\x1b[1G") into captured output.
	return strings.TrimSpace(width.StripANSI(res.Stdout)), nil
}
