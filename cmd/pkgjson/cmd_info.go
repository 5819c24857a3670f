// ABOUTME: version, which and record subcommands
// ABOUTME: Report or persist which package manager drives the project

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgjson/internal/width"
	"github.com/mauromedda/pkgjson/pkg/managers"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the project's package manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			v, err := s.Manager().Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func (a *app) newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which",
		Short: "Show which package manager the project resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			spec := s.Spec()
			declared, _ := s.FetchOr(managers.ManifestKey, nil)
			source := "packageManager"
			if declared == nil {
				source = "fallback"
			}

			out := cmd.OutOrStdout()
			rows := [][2]string{
				{"manager", string(spec.Name)},
				{"binary", s.Manager().Binary()},
				{"declared", spec.DeclaredVersion},
				{"source", source},
				{"directory", s.Dir()},
			}
			key := keyStyle(out)
			for _, row := range rows {
				if row[1] == "" {
					continue
				}
				fmt.Fprintf(out, "%s %s\n", key.Render(width.PadRight(row[0], 10)), row[1])
			}
			return nil
		},
	}
}

func (a *app) newRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Write packageManager as <binary>@<installed version>",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			if err := s.RecordPackageManager(cmd.Context()); err != nil {
				return err
			}
			v, err := s.Fetch(managers.ManifestKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", managers.ManifestKey, v)
			return nil
		},
	}
}
