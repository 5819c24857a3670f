// ABOUTME: pnpm adapter; install always states --frozen-lockfile or its negation
// ABOUTME: pnpm freezes the lockfile by itself under CI, so the flag is never implied

package managers

import (
	"context"

	"github.com/mauromedda/pkgjson/pkg/process"
)

type pnpm struct{}

func (pnpm) common(f *flags, o Options) {
	f.addIf(o.IgnoreScripts, "--ignore-scripts")
	f.addIf(o.OmitOptionalDeps, "--no-optional")
}

func (p pnpm) installArgs(o Options) ([]string, error) {
	f := flags{"install"}
	f.addIf(o.Silent, "--silent")
	if o.Frozen {
		f.add("--frozen-lockfile")
	} else {
		f.add("--no-frozen-lockfile")
	}
	p.common(&f, o)
	return f, nil
}

func (p pnpm) addArgs(packages []string, o Options) ([]string, error) {
	group, err := typeFlag(o.Type, "--save-prod", "--save-dev", "--save-optional")
	if err != nil {
		return nil, err
	}
	f := flags{"add"}
	f.addIf(o.Silent, "--silent")
	f.add(group)
	f.addIf(o.Exact, "--save-exact")
	p.common(&f, o)
	f.raw(packages...)
	return f, nil
}

func (p pnpm) removeArgs(packages []string, o Options) ([]string, error) {
	f := flags{"remove"}
	f.addIf(o.Silent, "--silent")
	p.common(&f, o)
	f.raw(packages...)
	return f, nil
}

func (pnpm) runArgs(script string, args []string, o Options) ([]string, error) {
	f := flags{"run"}
	f.addIf(o.Silent, "--silent")
	f.raw(script)
	f.raw(args...)
	return f, nil
}

func (pnpm) execCommand(_ context.Context, a *adapter, bin string, args []string) (process.Command, error) {
	f := flags{"exec"}
	f.raw(bin)
	f.raw(args...)
	return a.command(f...), nil
}
