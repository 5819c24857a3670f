// ABOUTME: bun adapter; a single --frozen-lockfile flag, no CI auto-freeze to undo
// ABOUTME: Installed binaries are launched through "bun run"

package managers

import (
	"context"

	"github.com/mauromedda/pkgjson/pkg/process"
)

// bun drops legacy-peer-deps and silent.
type bun struct{}

func (bun) common(f *flags, o Options) {
	f.addIf(o.IgnoreScripts, "--ignore-scripts")
	f.addIf(o.OmitOptionalDeps, "--omit=optional")
}

func (b bun) installArgs(o Options) ([]string, error) {
	f := flags{"install"}
	f.addIf(o.Frozen, "--frozen-lockfile")
	b.common(&f, o)
	return f, nil
}

func (b bun) addArgs(packages []string, o Options) ([]string, error) {
	group, err := typeFlag(o.Type, "", "--dev", "--optional")
	if err != nil {
		return nil, err
	}
	f := flags{"add"}
	f.add(group)
	f.addIf(o.Exact, "--exact")
	b.common(&f, o)
	f.raw(packages...)
	return f, nil
}

func (b bun) removeArgs(packages []string, o Options) ([]string, error) {
	f := flags{"remove"}
	b.common(&f, o)
	f.raw(packages...)
	return f, nil
}

func (bun) runArgs(script string, args []string, _ Options) ([]string, error) {
	f := flags{"run"}
	f.raw(script)
	f.raw(args...)
	return f, nil
}

func (b bun) execCommand(_ context.Context, a *adapter, bin string, args []string) (process.Command, error) {
	argv, _ := b.runArgs(bin, args, Options{})
	return a.command(argv...), nil
}
