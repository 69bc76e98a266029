// Package linear provides a synchronous, line-oriented progress reporter.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

const (
	notePrefix    = "[    ]"
	failurePrefix = "[ !! ]"
)

// Reporter implements ports.Reporter by printing one line per event.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	output *termenv.Output
}

// NewReporter creates a Reporter writing to w, or to stdout when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		w:      w,
		output: termenv.NewOutput(w, termenv.WithProfile(colorProfile())),
	}
}

// SetOutput updates the reporter's output destination.
// If w is nil, os.Stdout is used.
func (r *Reporter) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w = w
	r.output = termenv.NewOutput(w, termenv.WithProfile(colorProfile()))
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Progress prints "[ pp%] msg".
func (r *Reporter) Progress(percent int, msg string) {
	r.printf("[%3d%%] %s\n", percent, msg)
}

// Note prints "[    ] msg".
func (r *Reporter) Note(msg string) {
	r.printf("%s %s\n", notePrefix, msg)
}

// Failure prints "[ !! ] msg", in red when colors are enabled.
func (r *Reporter) Failure(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := r.output.String(failurePrefix).Foreground(termenv.ANSIRed).Bold().String()
	_, _ = fmt.Fprintf(r.w, "%s %s\n", prefix, msg)
}

func (r *Reporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.w, format, args...)
}
