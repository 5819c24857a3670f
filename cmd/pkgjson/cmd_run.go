// ABOUTME: run and exec subcommands
// ABOUTME: run checks the script exists first and suggests near names when it does not

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgjson/internal/suggest"
	"github.com/mauromedda/pkgjson/pkg/manifest"
	"github.com/mauromedda/pkgjson/pkg/packagejson"
)

func (a *app) newRunCmd() *cobra.Command {
	var (
		of   optionFlags
		soft bool
	)
	cmd := &cobra.Command{
		Use:   "run <script> [args...]",
		Short: "Run a package.json script",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := of.options()
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			script, rest := args[0], args[1:]
			if err := checkScript(s, script); err != nil {
				return err
			}
			m := s.Manager()
			return a.dispatch(cmd, soft, "run "+script, func(ctx context.Context) error {
				return m.Run(ctx, script, rest, o)
			}, func(ctx context.Context) (bool, error) {
				return m.TryRun(ctx, script, rest, o)
			})
		},
	}
	// Everything after the script name belongs to the script.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&of.silent, "silent", false, "Ask the package manager to be quiet")
	softFlag(cmd, &soft)
	return cmd
}

// checkScript fails with suggestions when script is not in "scripts".
func checkScript(s *packagejson.Session, script string) error {
	names, err := scriptNames(s)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == script {
			return nil
		}
	}
	msg := fmt.Sprintf("no script named %q in %s", script, manifest.FileName)
	if near := suggest.Find(script, names, 3); len(near) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(near), ", "))
	}
	return errors.New(msg)
}

func scriptNames(s *packagejson.Session) ([]string, error) {
	scripts, err := scriptsDoc(s)
	if err != nil {
		return nil, err
	}
	return scripts.Keys(), nil
}

func scriptsDoc(s *packagejson.Session) (*manifest.Document, error) {
	v, err := s.FetchOr("scripts", nil)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return manifest.New(), nil
	}
	doc, ok := v.(*manifest.Document)
	if !ok {
		return nil, fmt.Errorf("scripts must be an object, got %T", v)
	}
	return doc, nil
}

func quoteAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

func (a *app) newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <binary> [args...]",
		Short: "Run a binary installed in the project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			c, err := s.Manager().ExecCommand(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			return a.processRunner(cmd).Execute(cmd.Context(), c)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
