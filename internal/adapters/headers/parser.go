// Package headers discovers the headers a C or C++ source file includes by
// running the compiler in dependency-listing mode.
package headers

import (
	"bufio"
	"io"
	"strings"

	"github.com/samber/lo"
	"go.trai.ch/zerr"
)

// ParseRules extracts the prerequisites of source from make-style rules.
//
// Backslash-newline continuations are joined first. A logical line is kept
// when its second token equals source; every token after it is a
// prerequisite. The result is deduplicated in first-seen order.
func ParseRules(r io.Reader, source string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read dependency rules")
	}

	text := strings.ReplaceAll(string(data), "\\\r\n", " ")
	text = strings.ReplaceAll(text, "\\\n", " ")

	var deps []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[1] != source {
			continue
		}
		deps = append(deps, fields[2:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan dependency rules")
	}

	return lo.Uniq(deps), nil
}
