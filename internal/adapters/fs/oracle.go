// Package fs implements filesystem adapters: the modification-time oracle and
// the output remover.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Oracle implements ports.TimeOracle using os.Stat.
type Oracle struct{}

// NewOracle creates a new Oracle.
func NewOracle() *Oracle {
	return &Oracle{}
}

// Stamp reports the existence and modification time of path.
// A path that does not exist is StampMissing; any other stat failure is
// StampUnknown so callers treat it as out of date rather than failing.
func (o *Oracle) Stamp(path string) domain.Stamp {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return domain.Stamp{State: domain.StampPresent, ModTime: info.ModTime()}
	case errors.Is(err, fs.ErrNotExist):
		return domain.Stamp{State: domain.StampMissing}
	default:
		return domain.Stamp{State: domain.StampUnknown}
	}
}

// Remover implements ports.FileRemover using os.Remove.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// Remove deletes the file at path.
func (r *Remover) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove output"), "path", path)
	}
	return nil
}
