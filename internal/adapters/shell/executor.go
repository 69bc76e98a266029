// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"
	"time"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Shell is the interpreter commands are handed to.
const Shell = "sh"

// Executor implements ports.Executor by running commands through sh -c.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs command through the shell.
// Output is streamed to stdout and stderr, to the vertex carried by ctx if
// any, and captured into the result.
func (e *Executor) Execute(
	ctx context.Context,
	command string,
	stdout, stderr io.Writer,
) (domain.CommandResult, error) {
	cmd := exec.CommandContext(ctx, Shell, "-c", command) //nolint:gosec // commands come from the build file

	captured := &syncBuffer{}
	outs := []io.Writer{captured}
	errs := []io.Writer{captured}
	if stdout != nil {
		outs = append(outs, stdout)
	}
	if stderr != nil {
		errs = append(errs, stderr)
	}
	if v, ok := ports.VertexFromContext(ctx); ok {
		outs = append(outs, v.Stdout())
		errs = append(errs, v.Stderr())
	}
	cmd.Stdout = io.MultiWriter(outs...)
	cmd.Stderr = io.MultiWriter(errs...)

	start := time.Now()
	err := cmd.Run()
	result := domain.CommandResult{
		Output:   captured.Bytes(),
		Duration: time.Since(start),
	}

	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "command", command)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1
	return result, zerr.With(zerr.Wrap(err, "failed to start command"), "command", command)
}

// syncBuffer is a bytes.Buffer safe for the concurrent writes exec makes
// when stdout and stderr are not files.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return bytes.Clone(b.buf.Bytes())
}
