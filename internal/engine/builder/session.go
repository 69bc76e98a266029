package builder

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Session is one build pass over a registry.
// It owns the built counter and the total snapshot used for progress.
type Session struct {
	b *Builder

	registry *domain.Registry
	mode     domain.ProgressMode

	planned bool
	built   int
	total   int
}

// Registry returns the registry this session builds.
func (s *Session) Registry() *domain.Registry {
	return s.registry
}

// Resolve returns the targets producing outputs, or every target in
// registration order when outputs is empty.
func (s *Session) Resolve(outputs []string) ([]*domain.Target, error) {
	if len(outputs) == 0 {
		targets := make([]*domain.Target, 0, s.registry.Len())
		for t := range s.registry.All() {
			targets = append(targets, t)
		}
		return targets, nil
	}

	targets := make([]*domain.Target, 0, len(outputs))
	for _, output := range outputs {
		t, ok := s.registry.Lookup(domain.NewInternedString(output))
		if !ok {
			return nil, zerr.With(domain.ErrTargetNotFound, "target", output)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// NeedsBuilding reports whether t must be rebuilt.
//
// A target built in this session is never stale. A target is stale when any
// dependency target is stale, when its output is missing or unreadable, or
// when a dependency is missing, unreadable or not older than the output.
func (s *Session) NeedsBuilding(t *domain.Target) bool {
	if t.Built() {
		return false
	}

	for _, dep := range t.Dependencies {
		if next, ok := s.registry.Lookup(dep); ok && s.NeedsBuilding(next) {
			return true
		}
	}

	out := s.b.oracle.Stamp(t.Output.String())
	if !out.Exists() {
		return true
	}
	for _, dep := range t.Dependencies {
		stamp := s.b.oracle.Stamp(dep.String())
		if !stamp.Exists() || stamp.NotOlderThan(out) {
			return true
		}
	}
	return false
}

// Plan snapshots the number of stale targets among targets and their
// transitive target dependencies, resetting the built counter.
func (s *Session) Plan(targets []*domain.Target) int {
	seen := make(map[domain.InternedString]bool)
	total := 0

	var visit func(t *domain.Target)
	visit = func(t *domain.Target) {
		if seen[t.Output] {
			return
		}
		seen[t.Output] = true
		if s.NeedsBuilding(t) {
			total++
		}
		for _, dep := range t.Dependencies {
			if next, ok := s.registry.Lookup(dep); ok {
				visit(next)
			}
		}
	}
	for _, t := range targets {
		visit(t)
	}

	s.planned = true
	s.built = 0
	s.total = total
	return total
}

// Percentage returns the current progress percentage.
func (s *Session) Percentage() int {
	return s.mode.Percentage(s.built, s.total)
}

// Build brings t and everything it depends on up to date.
func (s *Session) Build(ctx context.Context, t *domain.Target) error {
	if !s.NeedsBuilding(t) {
		return nil
	}

	output := t.Output.String()
	s.built++
	s.b.reporter.Progress(s.Percentage(), "building: "+output)

	for _, dep := range t.Dependencies {
		if next, ok := s.registry.Lookup(dep); ok {
			if err := s.Build(ctx, next); err != nil {
				return err
			}
		}
		if !s.b.oracle.Stamp(dep.String()).Exists() {
			return zerr.With(zerr.With(domain.ErrMissingDependency, "target", output), "dependency", dep.String())
		}
	}

	s.b.reporter.Progress(s.Percentage(), "running build cmd for "+output)
	if err := s.run(ctx, t); err != nil {
		return err
	}

	t.MarkBuilt()
	return nil
}

// run executes the command of t and records the outcome.
func (s *Session) run(ctx context.Context, t *domain.Target) error {
	output := t.Output.String()

	ctx, vertex := s.b.telemetry.Record(ctx, output)
	result, err := s.b.executor.Execute(ctx, t.Command, s.b.stdout, s.b.stderr)
	if err == nil && !result.Succeeded() {
		err = zerr.With(zerr.With(domain.ErrCommandFailed, "target", output), "exit_code", result.ExitCode)
	} else if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "target", output)
	}
	vertex.Complete(err)
	if err != nil {
		return err
	}

	record := domain.BuildRecord{
		Output:      output,
		CommandHash: s.b.hasher.HashCommand(t.Command),
		ExitCode:    result.ExitCode,
		Duration:    result.Duration,
		BuiltAt:     time.Now(),
	}
	if err := s.b.journal.Put(record); err != nil {
		s.b.logger.Error(zerr.Wrap(err, "failed to record build"))
	}
	return nil
}

// BuildTargets builds targets in order, stopping at the first failure.
// The failing target is reported and the error is joined with ErrBuildFailed.
func (s *Session) BuildTargets(ctx context.Context, targets []*domain.Target) error {
	if !s.planned {
		s.Plan(targets)
	}

	for _, t := range targets {
		if err := s.Build(ctx, t); err != nil {
			s.b.reporter.Failure("target " + t.Output.String() + " failed to build")
			return errors.Join(domain.ErrBuildFailed, err)
		}
	}
	return nil
}

// BuildAll builds every registered target in registration order.
func (s *Session) BuildAll(ctx context.Context) error {
	targets, err := s.Resolve(nil)
	if err != nil {
		return err
	}
	return s.BuildTargets(ctx, targets)
}
