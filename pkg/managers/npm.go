// ABOUTME: npm adapter: frozen installs use "ci", script args follow a "--"
// ABOUTME: Supports ignore-scripts, legacy-peer-deps and omit=optional everywhere

package managers

import (
	"context"

	"github.com/mauromedda/pkgjson/pkg/process"
)

type npm struct{}

func (npm) common(f *flags, o Options) {
	f.addIf(o.IgnoreScripts, "--ignore-scripts")
	f.addIf(o.LegacyPeerDeps, "--legacy-peer-deps")
	f.addIf(o.OmitOptionalDeps, "--omit=optional")
}

func (n npm) installArgs(o Options) ([]string, error) {
	sub := "install"
	if o.Frozen {
		sub = "ci"
	}
	f := flags{sub}
	f.addIf(o.Silent, "--silent")
	n.common(&f, o)
	return f, nil
}

func (n npm) addArgs(packages []string, o Options) ([]string, error) {
	group, err := typeFlag(o.Type, "--save-prod", "--save-dev", "--save-optional")
	if err != nil {
		return nil, err
	}
	f := flags{"install"}
	f.addIf(o.Silent, "--silent")
	f.add(group)
	f.addIf(o.Exact, "--save-exact")
	n.common(&f, o)
	f.raw(packages...)
	return f, nil
}

func (n npm) removeArgs(packages []string, o Options) ([]string, error) {
	f := flags{"remove"}
	f.addIf(o.Silent, "--silent")
	n.common(&f, o)
	f.raw(packages...)
	return f, nil
}

// npm treats any dash-prefixed token as its own flag unless it follows "--".
func (npm) scriptArgs(f *flags, script string, args []string) {
	f.raw(script, "--")
	f.raw(args...)
}

func (n npm) runArgs(script string, args []string, o Options) ([]string, error) {
	f := flags{"run"}
	f.addIf(o.Silent, "--silent")
	n.scriptArgs(&f, script, args)
	return f, nil
}

// execCommand never installs on demand (--no) nor hits the network.
func (n npm) execCommand(_ context.Context, a *adapter, bin string, args []string) (process.Command, error) {
	f := flags{"exec", "--no", "--offline"}
	n.scriptArgs(&f, bin, args)
	return a.command(f...), nil
}
