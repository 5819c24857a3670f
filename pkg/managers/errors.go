// ABOUTME: Error taxonomy for manager resolution and adapter operations
// ABOUTME: Sentinels for errors.Is; ExecutionError carries argv, exit code, stderr

package managers

import (
	"errors"

	"github.com/mauromedda/pkgjson/pkg/process"
)

var (
	// ErrUnsupported covers unknown manager names and unknown dependency types.
	ErrUnsupported = errors.New("unsupported")

	// ErrVersionConstraint is returned when yarn is declared without a usable
	// major version.
	ErrVersionConstraint = errors.New("a major version must be present for Yarn")

	// ErrUnimplemented is returned by adapters that do not provide an
	// operation. NewBase returns one that provides none.
	ErrUnimplemented = errors.New("operation not implemented")
)

// ExecutionError reports a manager process that exited non-zero. Only the
// strict operation forms and Version return it.
type ExecutionError = process.ExitError
