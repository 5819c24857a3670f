// ABOUTME: Runner that attaches the child to a pseudo-terminal via creack/pty
// ABOUTME: Tools see a TTY and keep colors/progress; output may contain CSI codes

package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"

	pilog "github.com/mauromedda/pkgjson/internal/log"
)

// PTYRunner runs commands under a pseudo-terminal. stdout and stderr share
// the terminal, so Capture reports everything as Stdout.
type PTYRunner struct {
	// Stdout receives the terminal output of Execute. Defaults to os.Stdout.
	Stdout io.Writer
	Env    []string
}

// Execute implements Runner.
func (r *PTYRunner) Execute(ctx context.Context, c Command) error {
	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}

	var tail bytes.Buffer
	code, err := r.run(ctx, c, io.MultiWriter(out, &tail))
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Args: c.Args, Code: code, Stderr: tail.String()}
	}
	return nil
}

// Capture implements Runner.
func (r *PTYRunner) Capture(ctx context.Context, c Command) (Result, error) {
	var buf bytes.Buffer
	code, err := r.run(ctx, c, &buf)
	if err != nil {
		return Result{}, err
	}
	return Result{Stdout: buf.String(), ExitCode: code}, nil
}

func (r *PTYRunner) run(ctx context.Context, c Command, out io.Writer) (int, error) {
	if len(c.Args) == 0 {
		return 0, ErrEmptyCommand
	}
	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	if r.Env != nil {
		cmd.Env = r.Env
	}

	pilog.Debug("pty %s (in %s)", c, c.Dir)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return 0, err
	}
	defer ptmx.Close()

	// Reading the master returns EIO once the child side is closed.
	if _, err := io.Copy(out, ptmx); err != nil && !errors.Is(err, syscall.EIO) {
		pilog.Debug("pty read %s: %v", c, err)
	}

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
