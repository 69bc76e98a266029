// Package app implements the application layer for rebuild.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/rebuild/internal/engine/builder"
	"go.trai.ch/rebuild/internal/engine/factory"
	"go.trai.ch/zerr"
)

// Settings are the tool settings read by the application on every command.
type Settings interface {
	BuildFile() string
	ProgressMode() (domain.ProgressMode, error)
}

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	factory   *factory.Factory
	builder   *builder.Builder
	remover   ports.FileRemover
	journal   ports.BuildJournal
	hasher    ports.Hasher
	reporter  ports.Reporter
	telemetry ports.Telemetry
	settings  Settings
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	f *factory.Factory,
	b *builder.Builder,
	remover ports.FileRemover,
	journal ports.BuildJournal,
	hasher ports.Hasher,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	settings Settings,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		factory:   f,
		builder:   b,
		remover:   remover,
		journal:   journal,
		hasher:    hasher,
		reporter:  reporter,
		telemetry: telemetry,
		settings:  settings,
		logger:    log,
	}
}

// outputSetter is implemented by reporters whose destination can be changed.
type outputSetter interface {
	SetOutput(w io.Writer)
}

// SetOutput sends progress lines and command output to stdout, and command
// errors to stderr.
func (a *App) SetOutput(stdout, stderr io.Writer) {
	if r, ok := a.reporter.(outputSetter); ok {
		r.SetOutput(stdout)
	}
	a.builder.SetOutput(stdout, stderr)
}

// Build brings the named targets up to date, or every target when none are named.
func (a *App) Build(ctx context.Context, targets []string) error {
	defer a.closeTelemetry()

	session, err := a.newSession(ctx)
	if err != nil {
		return err
	}

	resolved, err := session.Resolve(targets)
	if err != nil {
		return err
	}

	if session.Plan(resolved) == 0 {
		a.reporter.Note("no work to do")
	} else if err := session.BuildTargets(ctx, resolved); err != nil {
		return err
	}

	a.reporter.Progress(100, "build completed")
	return nil
}

// Clean removes the output of every target and forgets its journal record.
// A failed removal is reported and does not stop the remaining removals.
func (a *App) Clean(ctx context.Context) error {
	registry, err := a.loadRegistry(ctx)
	if err != nil {
		return err
	}

	for t := range registry.All() {
		output := t.Output.String()
		if err := a.remover.Remove(output); err != nil {
			a.reporter.Note("failed to remove " + output)
			continue
		}
		a.reporter.Note("removed " + output)

		if err := a.journal.Delete(output); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to clear build record"))
		}
	}
	return nil
}

// Status writes one line per target to w telling whether it would be rebuilt,
// followed by what the journal knows about its last build. Nothing is executed.
func (a *App) Status(ctx context.Context, w io.Writer) error {
	session, err := a.newSession(ctx)
	if err != nil {
		return err
	}

	for t := range session.Registry().All() {
		state := "up-to-date"
		if session.NeedsBuilding(t) {
			state = "stale"
		}
		line := fmt.Sprintf("%-10s  %s", state, t.Output)

		record, err := a.journal.Get(t.Output.String())
		if err != nil {
			return err
		}
		if record != nil {
			line += fmt.Sprintf("  built %s in %s", record.BuiltAt.Format(time.RFC3339), record.Duration.Round(time.Millisecond))
			if record.CommandHash != a.hasher.HashCommand(t.Command) {
				line += " (command changed)"
			}
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return zerr.Wrap(err, "failed to write status")
		}
	}
	return nil
}

func (a *App) loadRegistry(ctx context.Context) (*domain.Registry, error) {
	path := a.settings.BuildFile()
	specs, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load build file")
	}
	return a.factory.NewRegistry(ctx, specs)
}

func (a *App) newSession(ctx context.Context) (*builder.Session, error) {
	mode, err := a.settings.ProgressMode()
	if err != nil {
		return nil, err
	}

	registry, err := a.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}
	return a.builder.NewSession(registry, mode)
}

func (a *App) closeTelemetry() {
	if err := a.telemetry.Close(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to close telemetry"))
	}
}
