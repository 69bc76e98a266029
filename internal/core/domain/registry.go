// Package domain contains the core domain models of the build engine: targets,
// the target registry and the values exchanged with adapters.
package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Registry is an insertion-ordered collection of targets, looked up by output.
type Registry struct {
	targets []*Target
	byOut   map[InternedString]*Target
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byOut: make(map[InternedString]*Target),
	}
}

// Add appends a target to the registry.
// It returns an error if a target with the same output is already registered.
func (r *Registry) Add(t *Target) error {
	if _, exists := r.byOut[t.Output]; exists {
		return zerr.With(ErrTargetAlreadyExists, "output", t.Output.String())
	}
	r.targets = append(r.targets, t)
	r.byOut[t.Output] = t
	return nil
}

// Lookup returns the target producing output, if any.
func (r *Registry) Lookup(output InternedString) (*Target, bool) {
	t, ok := r.byOut[output]
	return t, ok
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}

// All returns an iterator over the targets in insertion order.
func (r *Registry) All() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		for _, t := range r.targets {
			if !yield(t) {
				return
			}
		}
	}
}

// Validate checks the target dependency graph for cycles.
// Dependencies that are not registered outputs are leaf files and are ignored.
func (r *Registry) Validate() error {
	const (
		unvisited = iota
		visiting
		visited
	)
	state := make(map[InternedString]int, len(r.targets))
	var path []InternedString

	var visit func(t *Target) error
	visit = func(t *Target) error {
		state[t.Output] = visiting
		path = append(path, t.Output)

		for _, dep := range t.Dependencies {
			next, ok := r.byOut[dep]
			if !ok {
				continue
			}
			switch state[dep] {
			case visiting:
				return r.buildCycleError(path, dep)
			case unvisited:
				if err := visit(next); err != nil {
					return err
				}
			}
		}

		state[t.Output] = visited
		path = path[:len(path)-1]
		return nil
	}

	for _, t := range r.targets {
		if state[t.Output] == unvisited {
			if err := visit(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (r *Registry) buildCycleError(path []InternedString, dep InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	parts := make([]string, 0, len(path)-start+1)
	for _, node := range path[start:] {
		parts = append(parts, node.String())
	}
	parts = append(parts, dep.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(parts, " -> "))
}
