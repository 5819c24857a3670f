// ABOUTME: os/exec backed Runner; stdio is inherited unless overridden
// ABOUTME: Stderr is tee'd so a non-zero exit can report what the tool printed

package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	pilog "github.com/mauromedda/pkgjson/internal/log"
)

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env, when non-nil, replaces the inherited environment.
	Env []string
}

// NewExecRunner returns a runner wired to the current process's stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) command(ctx context.Context, c Command) (*exec.Cmd, error) {
	if len(c.Args) == 0 {
		return nil, ErrEmptyCommand
	}
	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	if r.Env != nil {
		cmd.Env = r.Env
	}
	return cmd, nil
}

// Execute implements Runner.
func (r *ExecRunner) Execute(ctx context.Context, c Command) error {
	cmd, err := r.command(ctx, c)
	if err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	pilog.Debug("exec %s (in %s)", c, c.Dir)
	return exitError(c, cmd.Run(), stderr.String())
}

// Capture implements Runner.
func (r *ExecRunner) Capture(ctx context.Context, c Command) (Result, error) {
	cmd, err := r.command(ctx, c)
	if err != nil {
		return Result{}, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	pilog.Debug("capture %s (in %s)", c, c.Dir)
	err = exitError(c, cmd.Run(), stderr.String())
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.Code
		return res, nil
	}
	return res, err
}

// exitError maps the error from exec.Cmd.Run onto the Runner contract.
func exitError(c Command, err error, stderr string) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Args: c.Args, Code: exitErr.ExitCode(), Stderr: stderr}
	}
	return fmt.Errorf("starting %s: %w", c.Args[0], err)
}
