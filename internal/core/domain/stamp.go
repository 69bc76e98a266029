package domain

import "time"

// StampState describes what the filesystem reported for a path.
type StampState int

const (
	// StampMissing means the path does not exist.
	StampMissing StampState = iota
	// StampPresent means the path exists and ModTime is valid.
	StampPresent
	// StampUnknown means the path could not be queried (e.g. permission denied).
	StampUnknown
)

// Stamp is the answer of a time oracle for a single path.
type Stamp struct {
	State   StampState
	ModTime time.Time
}

// Exists reports whether the path is known to exist.
func (s Stamp) Exists() bool {
	return s.State == StampPresent
}

// NotOlderThan reports whether s is at least as recent as other.
// Equal instants count, so a dependency written in the same tick as its
// output still makes the output stale. Both stamps must be present.
func (s Stamp) NotOlderThan(other Stamp) bool {
	return !s.ModTime.Before(other.ModTime)
}
