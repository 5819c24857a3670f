// ABOUTME: Yarn 2+ adapter; always states --immutable or --no-immutable on install
// ABOUTME: Berry turns immutable on by itself under CI, so the flag is never implied

package managers

import (
	"context"

	"github.com/mauromedda/pkgjson/pkg/process"
)

// yarnBerry cannot express ignore-scripts, legacy-peer-deps, omit-optional
// or silent; those options are dropped.
type yarnBerry struct{}

func (yarnBerry) installArgs(o Options) ([]string, error) {
	if o.Frozen {
		return []string{"install", "--immutable"}, nil
	}
	return []string{"install", "--no-immutable"}, nil
}

func (yarnBerry) addArgs(packages []string, o Options) ([]string, error) {
	group, err := typeFlag(o.Type, "", "--dev", "--optional")
	if err != nil {
		return nil, err
	}
	f := flags{"add"}
	f.add(group)
	f.addIf(o.Exact, "--exact")
	f.raw(packages...)
	return f, nil
}

func (yarnBerry) removeArgs(packages []string, _ Options) ([]string, error) {
	f := flags{"remove"}
	f.raw(packages...)
	return f, nil
}

func (yarnBerry) runArgs(script string, args []string, _ Options) ([]string, error) {
	f := flags{"run"}
	f.raw(script)
	f.raw(args...)
	return f, nil
}

func (yarnBerry) execCommand(_ context.Context, a *adapter, bin string, args []string) (process.Command, error) {
	f := flags{"exec"}
	f.raw(bin)
	f.raw(args...)
	return a.command(f...), nil
}
