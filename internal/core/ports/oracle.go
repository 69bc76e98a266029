package ports

import "go.trai.ch/rebuild/internal/core/domain"

// TimeOracle answers existence and modification-time queries for paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks
type TimeOracle interface {
	// Stamp reports whether path exists and when it was last modified.
	// It never fails: paths that cannot be queried report domain.StampUnknown.
	Stamp(path string) domain.Stamp
}

// FileRemover deletes build outputs.
type FileRemover interface {
	// Remove deletes the file at path. Removing a missing file is an error.
	Remove(path string) error
}
