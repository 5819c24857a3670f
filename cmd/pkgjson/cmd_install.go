// ABOUTME: install, add and remove subcommands
// ABOUTME: install and add create package.json when it is missing

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newInstallCmd() *cobra.Command {
	var (
		of   optionFlags
		soft bool
	)
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the project's dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := of.options()
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context(), cmd, true)
			if err != nil {
				return err
			}
			m := s.Manager()
			return a.dispatch(cmd, soft, "install", func(ctx context.Context) error {
				return m.Install(ctx, o)
			}, func(ctx context.Context) (bool, error) {
				return m.TryInstall(ctx, o)
			})
		},
	}
	of.registerInstall(cmd.Flags())
	softFlag(cmd, &soft)
	return cmd
}

func (a *app) newAddCmd() *cobra.Command {
	var (
		of   optionFlags
		soft bool
	)
	cmd := &cobra.Command{
		Use:   "add <package>...",
		Short: "Add dependencies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := of.options()
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context(), cmd, true)
			if err != nil {
				return err
			}
			m := s.Manager()
			return a.dispatch(cmd, soft, "add", func(ctx context.Context) error {
				return m.Add(ctx, args, o)
			}, func(ctx context.Context) (bool, error) {
				return m.TryAdd(ctx, args, o)
			})
		},
	}
	of.registerAdd(cmd.Flags())
	softFlag(cmd, &soft)
	return cmd
}

func (a *app) newRemoveCmd() *cobra.Command {
	var (
		of   optionFlags
		soft bool
	)
	cmd := &cobra.Command{
		Use:     "remove <package>...",
		Aliases: []string{"rm"},
		Short:   "Remove dependencies",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := of.options()
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			m := s.Manager()
			return a.dispatch(cmd, soft, "remove", func(ctx context.Context) error {
				return m.Remove(ctx, args, o)
			}, func(ctx context.Context) (bool, error) {
				return m.TryRemove(ctx, args, o)
			})
		},
	}
	of.register(cmd.Flags())
	softFlag(cmd, &soft)
	return cmd
}

// dispatch runs the strict form, or the soft form with --soft.
func (a *app) dispatch(cmd *cobra.Command, soft bool, op string,
	strict func(context.Context) error, try func(context.Context) (bool, error)) error {
	ctx := cmd.Context()
	if !soft {
		return strict(ctx)
	}
	ok, err := try(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle(cmd.ErrOrStderr()).Render(op+" did not succeed"))
	}
	return nil
}
