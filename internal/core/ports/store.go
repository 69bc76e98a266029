package ports

import "go.trai.ch/rebuild/internal/core/domain"

// BuildJournal defines the interface for recording completed builds.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildJournal interface {
	// Get retrieves the last record for output.
	// Returns nil, nil if not found.
	Get(output string) (*domain.BuildRecord, error)

	// Put stores a record, replacing any previous record for the same output.
	Put(record domain.BuildRecord) error

	// Delete removes the record for output, if any.
	Delete(output string) error
}
