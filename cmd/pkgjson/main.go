// ABOUTME: CLI entry point for pkgjson
// ABOUTME: Runs the cobra command tree; a failed tool's exit code becomes ours

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mauromedda/pkgjson/pkg/managers"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	root := newRootCmd(&app{})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle(os.Stderr).Render("error:"), err)
		os.Exit(exitCode(err))
	}
}

// exitCode forwards the exit status of a package manager that ran and failed.
func exitCode(err error) int {
	var execErr *managers.ExecutionError
	if errors.As(err, &execErr) && execErr.Code > 0 {
		return execErr.Code
	}
	return 1
}
