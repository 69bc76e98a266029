// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/rebuild/internal/core/domain"
)

// Executor defines the interface for running a target's shell command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs command through the shell, streaming its output to stdout and stderr.
	//
	// A command that ran and exited non-zero is reported through the result's
	// ExitCode with a nil error. The error is reserved for commands that could
	// not be started or were interrupted by ctx.
	Execute(ctx context.Context, command string, stdout, stderr io.Writer) (domain.CommandResult, error)
}
