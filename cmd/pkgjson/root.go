// ABOUTME: Root command, global flags and per-invocation setup
// ABOUTME: Loads .env and YAML config before any subcommand touches the project

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgjson/internal/config"
	pilog "github.com/mauromedda/pkgjson/internal/log"
	"github.com/mauromedda/pkgjson/pkg/managers"
	"github.com/mauromedda/pkgjson/pkg/packagejson"
	"github.com/mauromedda/pkgjson/pkg/process"
)

// app carries global flags and loaded settings across subcommands.
type app struct {
	dir      string
	fallback string
	verbose  bool
	pty      bool

	settings *config.Settings

	// runner overrides the process runner; tests set it to a Recorder.
	runner process.Runner
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pkgjson",
		Short: "One command set for npm, yarn, pnpm and bun projects",
		Long: "pkgjson drives whichever package manager a project declares in the\n" +
			"packageManager field of package.json, falling back to npm or a configured default.",
		Version:           fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.dir, "dir", "C", ".", "Project directory containing package.json")
	flags.StringVar(&a.fallback, "fallback", "", "Manager to use when packageManager is not declared")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log every command that is run")
	flags.BoolVar(&a.pty, "pty", false, "Run the package manager under a pseudo-terminal")

	cmd.AddCommand(
		a.newInstallCmd(),
		a.newAddCmd(),
		a.newRemoveCmd(),
		a.newRunCmd(),
		a.newExecCmd(),
		a.newVersionCmd(),
		a.newWhichCmd(),
		a.newNativeCmd(),
		a.newGetCmd(),
		a.newSetCmd(),
		a.newDeleteCmd(),
		a.newScriptsCmd(),
		a.newRecordCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	abs, err := filepath.Abs(a.dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", a.dir, err)
	}
	a.dir = abs

	if err := godotenv.Load(filepath.Join(abs, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	settings, err := config.Load(abs)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.settings = settings

	switch {
	case a.verbose:
		pilog.SetLevel(pilog.LevelDebug)
	case settings.LogLevel != "":
		lvl, err := pilog.ParseLevel(settings.LogLevel)
		if err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
		pilog.SetLevel(lvl)
	}
	pilog.SetOutput(cmd.ErrOrStderr())
	return nil
}

// processRunner builds the runner for this invocation, wired to the
// command's stdio.
func (a *app) processRunner(cmd *cobra.Command) process.Runner {
	if a.runner != nil {
		return a.runner
	}
	if a.pty || (a.settings != nil && a.settings.PTY) {
		return &process.PTYRunner{Stdout: cmd.OutOrStdout()}
	}
	return &process.ExecRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
}

// open binds a session to the project. create allows a missing package.json
// to be created, as install and add do.
func (a *app) open(ctx context.Context, cmd *cobra.Command, create bool) (*packagejson.Session, error) {
	fallback, source, err := config.ResolveFallback(a.fallback, a.settings)
	if err != nil {
		return nil, err
	}
	pilog.Debug("fallback manager %s (from %s)", fallback, source)

	opts := []packagejson.Option{
		packagejson.WithFallback(fallback),
		packagejson.WithRunner(a.processRunner(cmd)),
	}
	if a.settings != nil && len(a.settings.Commands) > 0 {
		cmds := make(map[managers.Name][]string, len(a.settings.Commands))
		for name, prefix := range a.settings.Commands {
			cmds[managers.Name(name)] = prefix
		}
		opts = append(opts, packagejson.WithCommands(cmds))
	}

	if create {
		return packagejson.New(ctx, a.dir, opts...)
	}
	return packagejson.Read(ctx, a.dir, opts...)
}
