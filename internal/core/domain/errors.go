package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when a target with the same output is registered twice.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrEmptyOutput is returned when a target declaration has no output.
	ErrEmptyOutput = zerr.New("target output is empty")

	// ErrMissingDependency is returned when a dependency does not exist after it should have been satisfied.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the target dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not registered.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrCommandFailed is returned when a target's command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildFailed is returned when a build pass stops on a failing target.
	ErrBuildFailed = zerr.New("build failed")

	// ErrConfigReadFailed is returned when the build file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read build file")

	// ErrConfigParseFailed is returned when the build file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse build file")

	// ErrUnsupportedVersion is returned when the build file declares an unknown version.
	ErrUnsupportedVersion = zerr.New("unsupported build file version")

	// ErrInvalidProgressMode is returned when an unknown progress mode is configured.
	ErrInvalidProgressMode = zerr.New("invalid progress mode, expected 'ratio' or 'truncate'")

	// ErrStoreReadFailed is returned when the build journal cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build journal")

	// ErrStoreUnmarshalFailed is returned when the build journal cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build journal")

	// ErrStoreMarshalFailed is returned when the build journal cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build journal")

	// ErrStoreWriteFailed is returned when the build journal cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build journal")
)
