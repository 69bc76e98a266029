package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/adapters/telemetry/progrock"
	"go.trai.ch/rebuild/internal/core/ports"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, progrock.New())
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "b.o")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("compiling b.c\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("warning: unused variable\n"))
	require.NoError(t, err)

	vertex.Complete(nil)
	require.NoError(t, recorder.Close())
}

func TestRecorder_RepeatedNames(t *testing.T) {
	recorder := progrock.New()

	_, first := recorder.Record(context.Background(), "a")
	_, second := recorder.Record(context.Background(), "a")
	assert.NotSame(t, first, second)

	first.Complete(nil)
	second.Complete(errors.New("command failed"))
	require.NoError(t, recorder.Close())
}
