package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a slog.Handler producing plain, human-readable lines.
// Warnings are prefixed with "warning:" and coloured unless NO_COLOR is set.
type Handler struct {
	mu    *sync.Mutex
	out   *termenv.Output
	level slog.Level
	attrs []slog.Attr
	group string
}

// NewHandler creates a Handler writing records at or above level to w.
func NewHandler(w io.Writer, level slog.Level) *Handler {
	profile := termenv.ANSI
	if os.Getenv("NO_COLOR") != "" {
		profile = termenv.Ascii
	}
	return &Handler{
		mu:    &sync.Mutex{},
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes the record as a single entry.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	switch {
	case r.Level >= slog.LevelError:
		msg = h.out.String(msg).Foreground(termenv.ANSIRed).String()
	case r.Level >= slog.LevelWarn:
		msg = h.out.String("warning: " + msg).Foreground(termenv.ANSIYellow).String()
	}

	parts := []string{msg}
	for _, attr := range h.attrs {
		parts = append(parts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, formatAttr(h.group, attr))
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, strings.Join(parts, " "))
	return err
}

// WithAttrs returns a handler that appends attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(slices.Clone(h.attrs), attrs...)
	return &clone
}

// WithGroup returns a handler that qualifies attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
