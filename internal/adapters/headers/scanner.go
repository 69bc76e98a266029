package headers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// ListFlag puts the compiler in dependency-listing mode, omitting system headers.
const ListFlag = "-MM"

// Scanner implements ports.HeaderScanner on top of a shell executor.
type Scanner struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(executor ports.Executor, logger ports.Logger) *Scanner {
	return &Scanner{
		executor: executor,
		logger:   logger,
	}
}

// Scan runs "compiler -MM source args..." and returns the headers listed for
// source. A compiler that cannot be started or exits non-zero is a warning:
// whatever it printed is still parsed.
func (s *Scanner) Scan(ctx context.Context, source, compiler string, args []string) ([]string, error) {
	command := Command(source, compiler, args)

	var stdout bytes.Buffer
	result, err := s.executor.Execute(ctx, command, &stdout, io.Discard)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		s.logger.Warn(fmt.Sprintf("%s: failed to run header scan: %v", source, err))
		return []string{}, nil
	}
	if !result.Succeeded() {
		s.logger.Warn(fmt.Sprintf("%s: header scan exited with status %d", source, result.ExitCode))
	}

	deps, err := ParseRules(&stdout, source)
	if err != nil {
		return nil, zerr.With(err, "source", source)
	}
	if deps == nil {
		deps = []string{}
	}
	return deps, nil
}

// Command renders the dependency-listing command line for source.
func Command(source, compiler string, args []string) string {
	parts := make([]string, 0, len(args)+3)
	parts = append(parts, compiler, ListFlag, source)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}
