// ABOUTME: doctor subcommand: probes every supported manager and shows config
// ABOUTME: Version probes run concurrently with errgroup; results print in a fixed order

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/pkgjson/internal/config"
	"github.com/mauromedda/pkgjson/internal/width"
	"github.com/mauromedda/pkgjson/pkg/managers"
	"github.com/mauromedda/pkgjson/pkg/manifest"
	"github.com/mauromedda/pkgjson/pkg/process"
)

type probe struct {
	name    managers.Name
	version string
	err     error
}

func (a *app) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose package manager availability and configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			probes := a.probeManagers(cmd)

			fmt.Fprintln(out, "=== Managers ===")
			key := keyStyle(out)
			for _, p := range probes {
				status := p.version
				if p.err != nil {
					status = warnStyle(out).Render("unavailable")
				}
				fmt.Fprintf(out, "  %s %s\n", key.Render(width.PadRight(string(p.name), 13)), status)
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, config.Explain(a.settings, a.dir))
			fmt.Fprintln(out)

			fmt.Fprintln(out, "=== Project ===")
			s, err := a.open(cmd.Context(), cmd, false)
			if errors.Is(err, manifest.ErrNotFound) {
				fmt.Fprintf(out, "  no %s in %s\n", manifest.FileName, a.dir)
				return nil
			}
			if err != nil {
				return err
			}
			name := s.Manager().Name()
			fmt.Fprintf(out, "  %s %s\n", key.Render(width.PadRight("manager", 13)), name)
			for _, p := range probes {
				if p.name == name && p.err != nil {
					return fmt.Errorf("%s is required by this project but unavailable: %w", name, p.err)
				}
			}
			return nil
		},
	}
}

// probeManagers asks every supported manager for its version. A failed probe
// is recorded, not returned, so one missing tool never hides the others.
func (a *app) probeManagers(cmd *cobra.Command) []probe {
	names := managers.Names()
	probes := make([]probe, len(names))
	runner := a.processRunner(cmd)

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, name := range names {
		probes[i].name = name
		g.Go(func() error {
			probes[i].version, probes[i].err = a.probeVersion(ctx, name, runner)
			return nil
		})
	}
	_ = g.Wait()
	return probes
}

func (a *app) probeVersion(ctx context.Context, name managers.Name, runner process.Runner) (string, error) {
	opts := []managers.Option{managers.WithRunner(runner)}
	if prefix := a.settings.CommandFor(name); len(prefix) > 0 {
		opts = append(opts, managers.WithCommand(prefix...))
	}
	m, err := managers.New(name, a.dir, opts...)
	if err != nil {
		return "", err
	}
	return m.Version(ctx)
}
