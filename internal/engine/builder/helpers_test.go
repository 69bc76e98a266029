package builder_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/rebuild/internal/engine/builder"
)

// fakeFS is an in-memory time oracle with a logical millisecond clock.
type fakeFS struct {
	now     int64
	files   map[string]int64
	unknown map[string]bool
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: make(map[string]int64), unknown: make(map[string]bool)}
}

func (f *fakeFS) Stamp(path string) domain.Stamp {
	if f.unknown[path] {
		return domain.Stamp{State: domain.StampUnknown}
	}
	ms, ok := f.files[path]
	if !ok {
		return domain.Stamp{State: domain.StampMissing}
	}
	return domain.Stamp{State: domain.StampPresent, ModTime: time.UnixMilli(ms)}
}

// touch writes paths in order, each one tick after the previous.
func (f *fakeFS) touch(paths ...string) {
	for _, p := range paths {
		f.now++
		f.files[p] = f.now
	}
}

// set writes path at an explicit instant.
func (f *fakeFS) set(path string, ms int64) {
	f.files[path] = ms
	f.now = max(f.now, ms)
}

// fakeExecutor records commands and writes the configured output of each.
type fakeExecutor struct {
	fs       *fakeFS
	writes   map[string]string
	exits    map[string]int
	commands []string
}

func newFakeExecutor(fs *fakeFS) *fakeExecutor {
	return &fakeExecutor{fs: fs, writes: make(map[string]string), exits: make(map[string]int)}
}

// produces declares that command writes output.
func (e *fakeExecutor) produces(command, output string) {
	e.writes[command] = output
}

func (e *fakeExecutor) Execute(_ context.Context, command string, _, _ io.Writer) (domain.CommandResult, error) {
	e.commands = append(e.commands, command)
	if code := e.exits[command]; code != 0 {
		return domain.CommandResult{ExitCode: code}, nil
	}
	if out, ok := e.writes[command]; ok {
		e.fs.touch(out)
	}
	return domain.CommandResult{Duration: time.Millisecond}, nil
}

// recordingReporter keeps every line it is asked to print.
type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) Progress(percent int, msg string) {
	r.lines = append(r.lines, fmt.Sprintf("[%3d%%] %s", percent, msg))
}

func (r *recordingReporter) Note(msg string) {
	r.lines = append(r.lines, "[    ] "+msg)
}

func (r *recordingReporter) Failure(msg string) {
	r.lines = append(r.lines, "[ !! ] "+msg)
}

type memoryJournal struct {
	records map[string]domain.BuildRecord
}

func (j *memoryJournal) Get(output string) (*domain.BuildRecord, error) {
	r, ok := j.records[output]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (j *memoryJournal) Put(record domain.BuildRecord) error {
	j.records[record.Output] = record
	return nil
}

func (j *memoryJournal) Delete(output string) error {
	delete(j.records, output)
	return nil
}

type lengthHasher struct{}

func (lengthHasher) HashCommand(command string) string {
	return fmt.Sprintf("len-%d", len(command))
}

type noopTelemetry struct{}

func (noopTelemetry) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

func (noopTelemetry) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Stderr() io.Writer { return io.Discard }
func (noopVertex) Complete(error)    {}

type discardLogger struct{}

func (discardLogger) Info(string)  {}
func (discardLogger) Warn(string)  {}
func (discardLogger) Error(error) {}

// harness wires a builder to in-memory fakes.
type harness struct {
	fs       *fakeFS
	executor *fakeExecutor
	reporter *recordingReporter
	journal  *memoryJournal
	builder  *builder.Builder
	registry *domain.Registry
}

func newHarness() *harness {
	fs := newFakeFS()
	h := &harness{
		fs:       fs,
		executor: newFakeExecutor(fs),
		reporter: &recordingReporter{},
		journal:  &memoryJournal{records: make(map[string]domain.BuildRecord)},
		registry: domain.NewRegistry(),
	}
	h.builder = builder.New(fs, h.executor, h.reporter, h.journal, lengthHasher{}, noopTelemetry{}, discardLogger{})
	h.builder.SetOutput(io.Discard, io.Discard)
	return h
}

// add registers a target whose command writes its output.
func (h *harness) add(t *testing.T, output string, deps []string, template string) *domain.Target {
	t.Helper()
	target := domain.NewTarget(output, deps, nil, domain.RenderCommand(template, output, deps))
	require.NoError(t, h.registry.Add(target))
	h.executor.produces(target.Command, output)
	return target
}

func (h *harness) session(t *testing.T, mode domain.ProgressMode) *builder.Session {
	t.Helper()
	s, err := h.builder.NewSession(h.registry, mode)
	require.NoError(t, err)
	return s
}
