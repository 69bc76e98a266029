package ports

import "context"

// HeaderScanner discovers the headers a source file includes.
//
//go:generate go run go.uber.org/mock/mockgen -source=header_scanner.go -destination=mocks/mock_header_scanner.go -package=mocks
type HeaderScanner interface {
	// Scan returns the headers source transitively includes, deduplicated in
	// first-seen order. A compiler that cannot be started yields an empty list.
	Scan(ctx context.Context, source, compiler string, args []string) ([]string, error)
}
