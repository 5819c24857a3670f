// ABOUTME: get, set, delete and scripts subcommands over package.json
// ABOUTME: Keys are dotted paths; --dry-run prints a unified diff instead of writing

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgjson/internal/diff"
	"github.com/mauromedda/pkgjson/internal/width"
	"github.com/mauromedda/pkgjson/pkg/manifest"
	"github.com/mauromedda/pkgjson/pkg/packagejson"
)

func (a *app) newGetCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a value from package.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := manifest.SplitPath(args[0])
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			doc, err := s.Store().Load()
			if err != nil {
				return err
			}
			v, ok := doc.Lookup(keys...)
			if !ok {
				return &manifest.KeyNotFoundError{Key: args[0]}
			}
			if str, isStr := v.(string); isStr && !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), str)
				return nil
			}
			out, err := manifest.RenderValue(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print strings as JSON")
	return cmd
}

func (a *app) newSetCmd() *cobra.Command {
	var asJSON, dryRun bool
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a value in package.json",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := manifest.SplitPath(args[0])
			if err != nil {
				return err
			}
			var value any = args[1]
			if asJSON {
				if value, err = manifest.ParseValue([]byte(args[1])); err != nil {
					return err
				}
			}
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			return editManifest(cmd.OutOrStdout(), s, dryRun, func(doc *manifest.Document) error {
				return doc.SetPath(value, keys...)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Parse the value as JSON")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the change as a diff without writing")
	return cmd
}

func (a *app) newDeleteCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a key from package.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := manifest.SplitPath(args[0])
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}

			if len(keys) == 1 && !dryRun {
				_, ok, err := s.Delete(keys[0])
				if err != nil {
					return err
				}
				if !ok {
					return &manifest.KeyNotFoundError{Key: args[0]}
				}
				return nil
			}
			return editManifest(cmd.OutOrStdout(), s, dryRun, func(doc *manifest.Document) error {
				if _, ok := doc.DeletePath(keys...); !ok {
					return &manifest.KeyNotFoundError{Key: args[0]}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the change as a diff without writing")
	return cmd
}

// editManifest applies fn through the store, or with dryRun prints the diff
// fn would produce and leaves the file alone.
func editManifest(out io.Writer, s *packagejson.Session, dryRun bool, fn func(*manifest.Document) error) error {
	if !dryRun {
		return s.Mutate(fn)
	}

	doc, err := s.Store().Load()
	if err != nil {
		return err
	}
	before, err := manifest.Render(doc)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	after, err := manifest.Render(doc)
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderDiff(out, diff.Unified(manifest.FileName, string(before), string(after))))
	return nil
}

func (a *app) newScriptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scripts",
		Short: "List package.json scripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context(), cmd, false)
			if err != nil {
				return err
			}
			scripts, err := scriptsDoc(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if scripts.Len() == 0 {
				fmt.Fprintln(out, dimStyle(out).Render("no scripts"))
				return nil
			}

			nameCol := 0
			for _, name := range scripts.Keys() {
				nameCol = max(nameCol, width.VisibleWidth(name))
			}
			cmdCol := max(terminalWidth(out)-nameCol-2, 10)
			key := keyStyle(out)

			scripts.Range(func(name string, v any) bool {
				line := strings.ReplaceAll(fmt.Sprint(v), "\n", " ")
				fmt.Fprintf(out, "%s  %s\n", key.Render(width.PadRight(name, nameCol)), width.Truncate(line, cmdCol))
				return true
			})
			return nil
		},
	}
}
