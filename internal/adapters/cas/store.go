// Package cas implements the build journal, a flat JSON record of the last
// successful build of every output.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildJournal using a flat JSON file.
// The file is read on first access.
type Store struct {
	path string

	mu     sync.RWMutex
	loaded bool
	cache  map[string]domain.BuildRecord
}

// NewStore creates a new journal backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildRecord),
	}
}

// ensureLoaded reads the journal file once. Callers must hold the write lock.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loaded = true
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.cache); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
		}
	}
	s.loaded = true
	return nil
}

// save writes the journal file. Callers must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Get retrieves the last record for output.
func (s *Store) Get(output string) (*domain.BuildRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	record, ok := s.cache[output]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and persists the journal.
func (s *Store) Put(record domain.BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.cache[record.Output] = record
	return s.save()
}

// Delete removes the record for output and persists the journal.
func (s *Store) Delete(output string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.cache[output]; !ok {
		return nil
	}
	delete(s.cache, output)
	return s.save()
}
