package ports

// Reporter prints user-facing build progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Progress prints msg under a percentage, e.g. "building: a.o".
	Progress(percent int, msg string)
	// Note prints an informational line without a percentage.
	Note(msg string)
	// Failure prints a failure line.
	Failure(msg string)
}
