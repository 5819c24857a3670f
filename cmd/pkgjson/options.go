// ABOUTME: Shared flag set mapping onto managers.Options
// ABOUTME: Every manager accepts the same flags; unsupported ones are dropped per tool

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mauromedda/pkgjson/pkg/managers"
)

type optionFlags struct {
	frozen         bool
	ignoreScripts  bool
	legacyPeerDeps bool
	omitOptional   bool
	silent         bool

	depType  string
	dev      bool
	optional bool
	exact    bool
}

func (o *optionFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&o.ignoreScripts, "ignore-scripts", false, "Do not run lifecycle scripts")
	fs.BoolVar(&o.legacyPeerDeps, "legacy-peer-deps", false, "Ignore peer dependency conflicts (npm only)")
	fs.BoolVar(&o.omitOptional, "omit-optional", false, "Skip optional dependencies")
	fs.BoolVar(&o.silent, "silent", false, "Ask the package manager to be quiet")
}

func (o *optionFlags) registerInstall(fs *pflag.FlagSet) {
	o.register(fs)
	fs.BoolVar(&o.frozen, "frozen", false, "Fail instead of updating the lockfile")
}

func (o *optionFlags) registerAdd(fs *pflag.FlagSet) {
	o.register(fs)
	fs.StringVarP(&o.depType, "type", "t", "", "Dependency group: production, dev or optional")
	fs.BoolVarP(&o.dev, "dev", "D", false, "Shorthand for --type dev")
	fs.BoolVarP(&o.optional, "optional", "O", false, "Shorthand for --type optional")
	fs.BoolVarP(&o.exact, "exact", "E", false, "Pin the exact version")
}

func (o *optionFlags) options() (managers.Options, error) {
	raw := o.depType
	switch {
	case o.dev:
		raw = string(managers.Dev)
	case o.optional:
		raw = string(managers.Optional)
	}
	depType, err := managers.ParseDependencyType(raw)
	if err != nil {
		return managers.Options{}, err
	}
	return managers.Options{
		Frozen:           o.frozen,
		IgnoreScripts:    o.ignoreScripts,
		LegacyPeerDeps:   o.legacyPeerDeps,
		OmitOptionalDeps: o.omitOptional,
		Silent:           o.silent,
		Type:             depType,
		Exact:            o.exact,
	}, nil
}

// softFlag adds --soft, which reports a failed tool run as a message instead
// of an error exit.
func softFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "soft", false, "Report failure without a non-zero exit")
}
