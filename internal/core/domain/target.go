package domain

import (
	"path/filepath"
	"slices"
)

// Target represents one buildable artifact: an output, the files it depends on,
// and the rendered command that produces it.
// It uses InternedString for outputs and dependencies since the same paths are
// repeated across many targets.
type Target struct {
	Output InternedString

	// Dependencies holds the explicit dependencies in declaration order,
	// followed by any dependencies discovered at construction time.
	Dependencies []InternedString

	// Explicit is the number of leading entries in Dependencies that were
	// declared by the user. Only those are substituted into the command.
	Explicit int

	// Command is the fully rendered shell command.
	Command string

	built bool
}

// NewTarget creates a Target from an output, its explicit dependencies, any
// discovered dependencies and an already rendered command.
func NewTarget(output string, explicit, discovered []string, command string) *Target {
	deps := make([]InternedString, 0, len(explicit)+len(discovered))
	deps = append(deps, NewInternedStrings(explicit)...)
	deps = append(deps, NewInternedStrings(discovered)...)
	return &Target{
		Output:       NewInternedString(output),
		Dependencies: deps,
		Explicit:     len(explicit),
		Command:      command,
	}
}

// ExplicitDependencies returns the user-declared dependencies.
func (t *Target) ExplicitDependencies() []InternedString {
	return t.Dependencies[:t.Explicit:t.Explicit]
}

// DiscoveredDependencies returns the dependencies added at construction time.
func (t *Target) DiscoveredDependencies() []InternedString {
	return t.Dependencies[t.Explicit:]
}

// Built reports whether the target's command ran successfully in this session.
func (t *Target) Built() bool {
	return t.built
}

// MarkBuilt records a successful build. A built target is never rebuilt.
func (t *Target) MarkBuilt() {
	t.built = true
}

// HeaderScan configures automatic discovery of included headers.
type HeaderScan struct {
	// Compiler is the compiler invocation used in dependency-listing mode.
	Compiler string
	// Args are extra arguments appended to the compiler invocation.
	Args []string
}

// TargetSpec is a target declaration as read from a build file, before the
// command has been rendered.
type TargetSpec struct {
	Output  string
	Depends []string
	Command string

	// Headers enables header discovery for compiled-source dependencies when non-nil.
	Headers *HeaderScan
}

// sourceExtensions lists the extensions of compiled source files.
var sourceExtensions = []string{".c", ".cc", ".cpp", ".cxx", ".c++"}

// IsSourceFile reports whether path names a compiled source file, the only
// kind of dependency scanned for headers.
func IsSourceFile(path string) bool {
	return slices.Contains(sourceExtensions, filepath.Ext(path))
}
