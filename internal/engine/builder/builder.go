// Package builder implements the staleness evaluator and the build executor.
package builder

import (
	"io"
	"os"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
)

// Builder holds the collaborators shared by build sessions.
type Builder struct {
	oracle    ports.TimeOracle
	executor  ports.Executor
	reporter  ports.Reporter
	journal   ports.BuildJournal
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger

	stdout io.Writer
	stderr io.Writer
}

// New creates a new Builder. Command output goes to the process's stdout and stderr.
func New(
	oracle ports.TimeOracle,
	executor ports.Executor,
	reporter ports.Reporter,
	journal ports.BuildJournal,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Builder {
	return &Builder{
		oracle:    oracle,
		executor:  executor,
		reporter:  reporter,
		journal:   journal,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// SetOutput redirects the output of executed commands.
func (b *Builder) SetOutput(stdout, stderr io.Writer) {
	b.stdout = stdout
	b.stderr = stderr
}

// NewSession starts a build session over registry.
// The registry is rejected when its dependency graph contains a cycle.
func (b *Builder) NewSession(registry *domain.Registry, mode domain.ProgressMode) (*Session, error) {
	if err := registry.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		b:        b,
		registry: registry,
		mode:     mode,
	}, nil
}
