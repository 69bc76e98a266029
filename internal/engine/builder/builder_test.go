package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports/mocks"
	"go.trai.ch/rebuild/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

func TestSession_Build_RecordsVertexAndJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs := newFakeFS()
	fs.touch("b.c")
	executor := newFakeExecutor(fs)

	target := domain.NewTarget("b.o", []string{"b.c"}, nil, "cc -c b.c")
	executor.produces(target.Command, "b.o")
	registry := domain.NewRegistry()
	require.NoError(t, registry.Add(target))

	mockJournal := mocks.NewMockBuildJournal(ctrl)
	mockHasher := mocks.NewMockHasher(ctrl)
	mockTelemetry := mocks.NewMockTelemetry(ctrl)
	mockVertex := mocks.NewMockVertex(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	ctx := context.Background()
	mockTelemetry.EXPECT().Record(gomock.Any(), "b.o").Return(ctx, mockVertex)
	mockVertex.EXPECT().Complete(nil)
	mockHasher.EXPECT().HashCommand("cc -c b.c").Return("abc123")
	mockJournal.EXPECT().Put(gomock.Any()).DoAndReturn(func(record domain.BuildRecord) error {
		assert.Equal(t, "b.o", record.Output)
		assert.Equal(t, "abc123", record.CommandHash)
		return nil
	})

	b := builder.New(fs, executor, &recordingReporter{}, mockJournal, mockHasher, mockTelemetry, mockLogger)
	s, err := b.NewSession(registry, domain.ProgressRatio)
	require.NoError(t, err)
	require.NoError(t, s.BuildAll(ctx))
}

func TestSession_Build_JournalFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs := newFakeFS()
	executor := newFakeExecutor(fs)

	target := domain.NewTarget("stamp", nil, nil, "touch stamp")
	executor.produces(target.Command, "stamp")
	registry := domain.NewRegistry()
	require.NoError(t, registry.Add(target))

	mockJournal := mocks.NewMockBuildJournal(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockJournal.EXPECT().Put(gomock.Any()).Return(errors.New("disk full"))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	b := builder.New(fs, executor, &recordingReporter{}, mockJournal, lengthHasher{}, noopTelemetry{}, mockLogger)
	s, err := b.NewSession(registry, domain.ProgressRatio)
	require.NoError(t, err)

	require.NoError(t, s.BuildAll(context.Background()))
	assert.True(t, target.Built())
}

func TestSession_Build_VertexCompletesWithFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs := newFakeFS()
	executor := newFakeExecutor(fs)
	executor.exits["false"] = 1

	target := domain.NewTarget("never", nil, nil, "false")
	registry := domain.NewRegistry()
	require.NoError(t, registry.Add(target))

	mockTelemetry := mocks.NewMockTelemetry(ctrl)
	mockVertex := mocks.NewMockVertex(ctrl)

	mockTelemetry.EXPECT().Record(gomock.Any(), "never").Return(context.Background(), mockVertex)
	mockVertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	b := builder.New(fs, executor, &recordingReporter{}, &memoryJournal{records: map[string]domain.BuildRecord{}}, lengthHasher{}, mockTelemetry, discardLogger{})
	s, err := b.NewSession(registry, domain.ProgressRatio)
	require.NoError(t, err)

	err = s.BuildAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestSession_Build_ExecutorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs := newFakeFS()
	target := domain.NewTarget("out", nil, nil, "run")
	registry := domain.NewRegistry()
	require.NoError(t, registry.Add(target))

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockExecutor.EXPECT().
		Execute(gomock.Any(), "run", gomock.Any(), gomock.Any()).
		Return(domain.CommandResult{ExitCode: -1}, context.Canceled)

	b := builder.New(fs, mockExecutor, &recordingReporter{}, &memoryJournal{records: map[string]domain.BuildRecord{}}, lengthHasher{}, noopTelemetry{}, discardLogger{})
	s, err := b.NewSession(registry, domain.ProgressRatio)
	require.NoError(t, err)

	err = s.Build(context.Background(), target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, "out", metadata(t, err)["target"])
	assert.False(t, target.Built())
}
