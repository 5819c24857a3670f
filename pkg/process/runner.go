// ABOUTME: Process runner contract: argv commands executed in a bound directory
// ABOUTME: Execute streams output; Capture collects stdout/stderr and the exit code

package process

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Command is an argv plus the directory to run it in. It is never a shell
// string: each element reaches the child process as its own argument.
type Command struct {
	Args []string
	Dir  string
}

// String joins the argv with spaces for logs and error messages only.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// Result is the captured outcome of a command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with code 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes commands. Both methods block until the child exits.
type Runner interface {
	// Execute runs the command with the runner's stdio attached. A non-zero
	// exit is reported as *ExitError; any other error means the process could
	// not be started.
	Execute(ctx context.Context, cmd Command) error

	// Capture runs the command and collects its output. The error is non-nil
	// only when the process could not be started; a non-zero exit code is
	// reported in the Result.
	Capture(ctx context.Context, cmd Command) (Result, error)
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s failed with exit code %d", strings.Join(e.Args, " "), e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Binary returns the program the failed command invoked.
func (e *ExitError) Binary() string {
	if len(e.Args) == 0 {
		return ""
	}
	return e.Args[0]
}

// ErrEmptyCommand is returned for a Command with no argv.
var ErrEmptyCommand = errors.New("empty command")
