package cas

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher implements ports.Hasher using xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashCommand returns the 64-bit xxhash of command as 16 hex digits.
func (h *Hasher) HashCommand(command string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(command))
}
