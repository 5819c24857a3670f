// ABOUTME: In-memory Runner that records commands and replays scripted results
// ABOUTME: Lets adapter tests assert on exact argv without spawning tools

package process

import (
	"context"
	"sync"
)

// Recorder is a Runner that never spawns anything. Every command is recorded;
// Respond decides the outcome (nil means success with empty output).
type Recorder struct {
	Respond func(cmd Command) (Result, error)

	mu       sync.Mutex
	commands []Command
}

// Commands returns every command seen so far, oldest first.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Last returns the most recent command, or the zero Command.
func (r *Recorder) Last() Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.commands) == 0 {
		return Command{}
	}
	return r.commands[len(r.commands)-1]
}

func (r *Recorder) handle(c Command) (Result, error) {
	r.mu.Lock()
	r.commands = append(r.commands, Command{Args: append([]string(nil), c.Args...), Dir: c.Dir})
	r.mu.Unlock()

	if len(c.Args) == 0 {
		return Result{}, ErrEmptyCommand
	}
	if r.Respond == nil {
		return Result{}, nil
	}
	return r.Respond(c)
}

// Execute implements Runner.
func (r *Recorder) Execute(_ context.Context, c Command) error {
	res, err := r.handle(c)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ExitError{Args: c.Args, Code: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// Capture implements Runner.
func (r *Recorder) Capture(_ context.Context, c Command) (Result, error) {
	return r.handle(c)
}
