// Package factory constructs targets from build file declarations,
// discovering included headers for compiled sources.
package factory

import (
	"context"
	"fmt"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options are the construction settings read on every call.
type Options interface {
	// Compiler is the header-scan compiler used when a declaration names none.
	Compiler() string
	// Verbose enables an "auto-added dependency" note per discovered header.
	Verbose() bool
	// Warnings enables the note for dependencies that are not scanned.
	Warnings() bool
}

// Factory creates targets.
type Factory struct {
	scanner  ports.HeaderScanner
	reporter ports.Reporter
	opts     Options
}

// New creates a new Factory.
func New(scanner ports.HeaderScanner, reporter ports.Reporter, opts Options) *Factory {
	return &Factory{
		scanner:  scanner,
		reporter: reporter,
		opts:     opts,
	}
}

// NewTarget creates a target from spec.
//
// The command is rendered from the explicit dependencies. When spec.Headers is
// set, every compiled-source dependency is scanned afterwards and the headers
// found are appended to the dependency list, so they take part in staleness
// checks without appearing in #DEPENDS.
func (f *Factory) NewTarget(ctx context.Context, spec domain.TargetSpec) (*domain.Target, error) {
	if spec.Output == "" {
		return nil, domain.ErrEmptyOutput
	}

	command := domain.RenderCommand(spec.Command, spec.Output, spec.Depends)
	if spec.Headers == nil {
		return domain.NewTarget(spec.Output, spec.Depends, nil, command), nil
	}

	compiler := spec.Headers.Compiler
	if compiler == "" {
		compiler = f.opts.Compiler()
	}

	var discovered []string
	for _, dep := range spec.Depends {
		if !domain.IsSourceFile(dep) {
			if f.opts.Warnings() {
				f.reporter.Note(fmt.Sprintf("warning: %s: headers will not be parsed (non-source file)", dep))
			}
			continue
		}

		found, err := f.scanner.Scan(ctx, dep, compiler, spec.Headers.Args)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "header scan failed"), "target", spec.Output)
		}
		discovered = append(discovered, found...)
	}

	if f.opts.Verbose() {
		for _, header := range discovered {
			f.reporter.Note("auto-added dependency: " + header)
		}
	}

	return domain.NewTarget(spec.Output, spec.Depends, discovered, command), nil
}

// NewRegistry creates a target for every spec and registers it in order.
func (f *Factory) NewRegistry(ctx context.Context, specs []domain.TargetSpec) (*domain.Registry, error) {
	registry := domain.NewRegistry()
	for _, spec := range specs {
		target, err := f.NewTarget(ctx, spec)
		if err != nil {
			return nil, err
		}
		if err := registry.Add(target); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
