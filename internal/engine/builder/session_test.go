package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func metadata(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	return zErr.Metadata()
}

func TestSession_NeedsBuilding_NoDependencies(t *testing.T) {
	h := newHarness()
	target := h.add(t, "stamp", nil, "touch #OUT")
	s := h.session(t, domain.ProgressRatio)

	assert.True(t, s.NeedsBuilding(target), "missing output is stale")

	h.fs.touch("stamp")
	assert.False(t, s.NeedsBuilding(target), "existing output without dependencies is up to date")
}

func TestSession_NeedsBuilding_Timestamps(t *testing.T) {
	tests := []struct {
		name   string
		dep    int64
		output int64
		stale  bool
	}{
		{name: "dependency older", dep: 10, output: 20, stale: false},
		{name: "dependency newer", dep: 30, output: 20, stale: true},
		{name: "same instant", dep: 20, output: 20, stale: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			target := h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
			h.fs.set("b.c", tt.dep)
			h.fs.set("b.o", tt.output)

			s := h.session(t, domain.ProgressRatio)
			assert.Equal(t, tt.stale, s.NeedsBuilding(target))
		})
	}
}

func TestSession_NeedsBuilding_Conservative(t *testing.T) {
	t.Run("missing dependency", func(t *testing.T) {
		h := newHarness()
		target := h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
		h.fs.touch("b.o")

		assert.True(t, h.session(t, domain.ProgressRatio).NeedsBuilding(target))
	})

	t.Run("unknown dependency", func(t *testing.T) {
		h := newHarness()
		target := h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
		h.fs.touch("b.c", "b.o")
		h.fs.unknown["b.c"] = true

		assert.True(t, h.session(t, domain.ProgressRatio).NeedsBuilding(target))
	})

	t.Run("unknown output", func(t *testing.T) {
		h := newHarness()
		target := h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
		h.fs.touch("b.c", "b.o")
		h.fs.unknown["b.o"] = true

		assert.True(t, h.session(t, domain.ProgressRatio).NeedsBuilding(target))
	})
}

func TestSession_NeedsBuilding_Transitive(t *testing.T) {
	h := newHarness()
	a := h.add(t, "a", []string{"b.o"}, "cc -o #OUT #DEPENDS")
	h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")

	// a is newer than b.o, but b.o is older than its source.
	h.fs.touch("b.o", "a", "b.c")

	s := h.session(t, domain.ProgressRatio)
	assert.True(t, s.NeedsBuilding(a))
}

func TestSession_NeedsBuilding_NoSideEffects(t *testing.T) {
	h := newHarness()
	target := h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
	h.fs.touch("b.c")

	s := h.session(t, domain.ProgressRatio)
	for range 3 {
		assert.True(t, s.NeedsBuilding(target))
	}
	assert.Empty(t, h.executor.commands)
	assert.Empty(t, h.reporter.lines)
	assert.False(t, target.Built())
}

func TestSession_Build_Idempotent(t *testing.T) {
	h := newHarness()
	target := h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
	h.fs.touch("b.c")

	s := h.session(t, domain.ProgressRatio)
	s.Plan([]*domain.Target{target})

	require.NoError(t, s.Build(context.Background(), target))
	require.NoError(t, s.Build(context.Background(), target))

	assert.Equal(t, []string{"cc -c b.c"}, h.executor.commands)
	assert.True(t, target.Built())
	assert.False(t, s.NeedsBuilding(target))
}

func TestSession_Build_ChainOrder(t *testing.T) {
	h := newHarness()
	a := h.add(t, "A", []string{"B"}, "make #OUT")
	h.add(t, "B", []string{"C"}, "make #OUT")
	h.add(t, "C", []string{"src"}, "make #OUT")
	h.fs.touch("src")

	s := h.session(t, domain.ProgressRatio)
	s.Plan([]*domain.Target{a})
	require.NoError(t, s.Build(context.Background(), a))

	assert.Equal(t, []string{"make C", "make B", "make A"}, h.executor.commands)
}

func TestSession_BuildAll_ObjectThenLink(t *testing.T) {
	h := newHarness()
	h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
	h.add(t, "a", []string{"b.o"}, "cc -o #OUT #DEPENDS")
	h.fs.touch("b.c")

	s := h.session(t, domain.ProgressRatio)
	all, err := s.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Plan(all))

	require.NoError(t, s.BuildAll(context.Background()))

	assert.Equal(t, []string{"cc -c b.c", "cc -o a b.o"}, h.executor.commands)
	assert.Equal(t, []string{
		"[ 50%] building: b.o",
		"[ 50%] running build cmd for b.o",
		"[100%] building: a",
		"[100%] running build cmd for a",
	}, h.reporter.lines)
}

func TestSession_Build_DependencyFirst(t *testing.T) {
	h := newHarness()
	h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
	a := h.add(t, "a", []string{"b.o"}, "cc -o #OUT #DEPENDS")
	h.fs.touch("b.c")

	s := h.session(t, domain.ProgressRatio)
	assert.Equal(t, 2, s.Plan([]*domain.Target{a}))
	require.NoError(t, s.Build(context.Background(), a))

	assert.Equal(t, []string{"cc -c b.c", "cc -o a b.o"}, h.executor.commands)
	assert.Equal(t, []string{
		"[ 50%] building: a",
		"[100%] building: b.o",
		"[100%] running build cmd for b.o",
		"[100%] running build cmd for a",
	}, h.reporter.lines)
}

func TestSession_Build_MissingLeaf(t *testing.T) {
	h := newHarness()
	target := h.add(t, "a", []string{"missing.c"}, "cc -o #OUT #DEPENDS")

	s := h.session(t, domain.ProgressRatio)
	s.Plan([]*domain.Target{target})
	err := s.Build(context.Background(), target)
	require.Error(t, err)

	assert.Empty(t, h.executor.commands, "command must not run")
	assert.False(t, target.Built())

	md := metadata(t, err)
	assert.Equal(t, "a", md["target"])
	assert.Equal(t, "missing.c", md["dependency"])
}

func TestSession_Build_DependencyNotProduced(t *testing.T) {
	h := newHarness()
	h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
	a := h.add(t, "a", []string{"b.o"}, "cc -o #OUT #DEPENDS")
	h.fs.touch("b.c")
	// The object command runs but writes nothing.
	delete(h.executor.writes, "cc -c b.c")

	s := h.session(t, domain.ProgressRatio)
	err := s.Build(context.Background(), a)
	require.Error(t, err)

	assert.Equal(t, []string{"cc -c b.c"}, h.executor.commands)
	assert.Equal(t, "b.o", metadata(t, err)["dependency"])
}

func TestSession_Build_CommandFails(t *testing.T) {
	h := newHarness()
	target := h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
	h.fs.touch("b.c")
	h.executor.exits["cc -c b.c"] = 2

	s := h.session(t, domain.ProgressRatio)
	err := s.Build(context.Background(), target)
	require.Error(t, err)

	md := metadata(t, err)
	assert.Equal(t, "b.o", md["target"])
	assert.Equal(t, 2, md["exit_code"])
	assert.False(t, target.Built())
	assert.Empty(t, h.journal.records)
}

func TestSession_BuildAll_FailFast(t *testing.T) {
	h := newHarness()
	h.add(t, "x", []string{"nope"}, "touch #OUT")
	h.add(t, "y", nil, "touch #OUT")

	s := h.session(t, domain.ProgressRatio)
	err := s.BuildAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))

	assert.Empty(t, h.executor.commands, "y must not be attempted after x fails")
	assert.Contains(t, h.reporter.lines, "[ !! ] target x failed to build")
}

func TestSession_BuildAll_NothingStale(t *testing.T) {
	h := newHarness()
	h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
	h.fs.touch("b.c", "b.o")

	s := h.session(t, domain.ProgressRatio)
	all, err := s.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Plan(all))
	assert.Equal(t, 100, s.Percentage())

	require.NoError(t, s.BuildAll(context.Background()))
	assert.Empty(t, h.executor.commands)
	assert.Empty(t, h.reporter.lines)
}

func TestSession_Progress(t *testing.T) {
	tests := []struct {
		mode domain.ProgressMode
		want []string
	}{
		{
			mode: domain.ProgressRatio,
			want: []string{"[ 33%] building: t1", "[ 67%] building: t2", "[100%] building: t3"},
		},
		{
			mode: domain.ProgressTruncate,
			want: []string{"[ 33%] building: t1", "[ 66%] building: t2", "[ 99%] building: t3"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			h := newHarness()
			h.add(t, "t1", nil, "touch #OUT")
			h.add(t, "t2", nil, "touch #OUT")
			h.add(t, "t3", nil, "touch #OUT")

			s := h.session(t, tt.mode)
			require.NoError(t, s.BuildAll(context.Background()))

			var building []string
			for _, line := range h.reporter.lines {
				if len(line) > 7 && line[7:16] == "building:" {
					building = append(building, line)
				}
			}
			assert.Equal(t, tt.want, building)
		})
	}
}

func TestSession_Plan_Subset(t *testing.T) {
	h := newHarness()
	h.add(t, "unrelated", nil, "touch #OUT")
	h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
	h.add(t, "a", []string{"b.o"}, "cc -o #OUT #DEPENDS")
	h.fs.touch("b.c")

	s := h.session(t, domain.ProgressRatio)
	targets, err := s.Resolve([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Plan(targets))

	require.NoError(t, s.BuildTargets(context.Background(), targets))
	assert.Equal(t, []string{"cc -c b.c", "cc -o a b.o"}, h.executor.commands)
}

func TestSession_Resolve_Unknown(t *testing.T) {
	h := newHarness()
	h.add(t, "a", nil, "touch #OUT")

	_, err := h.session(t, domain.ProgressRatio).Resolve([]string{"a", "z"})
	require.Error(t, err)
	assert.Equal(t, "z", metadata(t, err)["target"])
}

func TestSession_Journal(t *testing.T) {
	h := newHarness()
	h.add(t, "b.o", []string{"b.c"}, "cc -c #DEPENDS")
	h.fs.touch("b.c")

	s := h.session(t, domain.ProgressRatio)
	require.NoError(t, s.BuildAll(context.Background()))

	record, ok := h.journal.records["b.o"]
	require.True(t, ok)
	assert.Equal(t, "len-9", record.CommandHash)
	assert.Equal(t, 0, record.ExitCode)
	assert.False(t, record.BuiltAt.IsZero())
}

func TestBuilder_NewSession_RejectsCycle(t *testing.T) {
	h := newHarness()
	h.add(t, "a", []string{"b"}, "touch #OUT")
	h.add(t, "b", []string{"a"}, "touch #OUT")

	_, err := h.builder.NewSession(h.registry, domain.ProgressRatio)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle detected")
	assert.Equal(t, "a -> b -> a", metadata(t, err)["cycle"])
}
