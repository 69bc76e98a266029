package ports

// Hasher fingerprints rendered commands for the build journal.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashCommand returns a stable fingerprint of command.
	HashCommand(command string) string
}
