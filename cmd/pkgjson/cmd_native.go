// ABOUTME: native subcommands print the argv a manager would run, as a JSON array
// ABOUTME: Nothing is executed except "yarn bin" for yarn classic exec

package main

import (
	"fmt"

	"github.com/mailru/easyjson/jwriter"
	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgjson/pkg/managers"
	"github.com/mauromedda/pkgjson/pkg/process"
)

func (a *app) newNativeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "native",
		Short: "Print the native command for an operation without running it",
	}

	var installFlags optionFlags
	install := &cobra.Command{
		Use:   "install",
		Short: "Native install command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printNative(cmd, &installFlags, func(m managers.Manager, o managers.Options) (process.Command, error) {
				return m.InstallCommand(o)
			})
		},
	}
	installFlags.registerInstall(install.Flags())

	var addFlags optionFlags
	add := &cobra.Command{
		Use:   "add <package>...",
		Short: "Native add command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNative(cmd, &addFlags, func(m managers.Manager, o managers.Options) (process.Command, error) {
				return m.AddCommand(args, o)
			})
		},
	}
	addFlags.registerAdd(add.Flags())

	var removeFlags optionFlags
	remove := &cobra.Command{
		Use:   "remove <package>...",
		Short: "Native remove command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNative(cmd, &removeFlags, func(m managers.Manager, o managers.Options) (process.Command, error) {
				return m.RemoveCommand(args, o)
			})
		},
	}
	removeFlags.register(remove.Flags())

	var runFlags optionFlags
	run := &cobra.Command{
		Use:   "run <script> [args...]",
		Short: "Native run command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNative(cmd, &runFlags, func(m managers.Manager, o managers.Options) (process.Command, error) {
				return m.RunCommand(args[0], args[1:], o)
			})
		},
	}
	run.Flags().SetInterspersed(false)
	run.Flags().BoolVar(&runFlags.silent, "silent", false, "Ask the package manager to be quiet")

	exec := &cobra.Command{
		Use:   "exec <binary> [args...]",
		Short: "Native exec command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNative(cmd, &optionFlags{}, func(m managers.Manager, _ managers.Options) (process.Command, error) {
				return m.ExecCommand(cmd.Context(), args[0], args[1:])
			})
		},
	}
	exec.Flags().SetInterspersed(false)

	cmd.AddCommand(install, add, remove, run, exec)
	return cmd
}

func (a *app) printNative(cmd *cobra.Command, of *optionFlags,
	build func(managers.Manager, managers.Options) (process.Command, error)) error {
	o, err := of.options()
	if err != nil {
		return err
	}
	s, err := a.open(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	c, err := build(s.Manager(), o)
	if err != nil {
		return err
	}
	out, err := argvJSON(c.Args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// argvJSON encodes argv as a single-line JSON array.
func argvJSON(argv []string) ([]byte, error) {
	w := &jwriter.Writer{NoEscapeHTML: true}
	w.RawByte('[')
	for i, arg := range argv {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(arg)
	}
	w.RawByte(']')
	return w.BuildBytes()
}
