package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drill.dev/pkg/drill/internal/adapter"
	m "drill.dev/pkg/drill/internal/model"
)

type fakeBuildAdapter struct {
	output string
	err    error
	builds int
}

func (f *fakeBuildAdapter) Build(_ context.Context, _ m.Path, _ m.Path) (string, error) {
	f.builds++
	return f.output, f.err
}

type fakeRunAdapter struct {
	executions map[string]m.Execution
	err        error
}

func (f *fakeRunAdapter) Run(_ context.Context, _ m.Path, input []byte, _ time.Duration) (m.Execution, error) {
	if f.err != nil {
		return m.Execution{}, f.err
	}

	return f.executions[string(input)], nil
}

func TestGradeTask(t *testing.T) {
	buildAdapter := &fakeBuildAdapter{}
	runAdapter := &fakeRunAdapter{executions: map[string]m.Execution{
		"1200\n": {Stdout: "21\n"},
		"7\n":    {Stdout: "7\n"},
		"10\n":   {Stdout: "10\n"},
	}}
	grader := NewGrader(adapter.NewLocalTaskFSAdapter(), buildAdapter, runAdapter)

	task := m.Task{Slug: "reverse-digits", Dir: m.Path(t.TempDir())}
	vectors := []m.Vector{
		{Name: "01", Input: []byte("1200\n"), Want: []byte("21\n"), HasWant: true},
		{Name: "02", Input: []byte("7\n")},
		{Name: "03", Input: []byte("10\n"), Want: []byte("1\n"), HasWant: true},
	}

	result, err := grader.GradeTask(context.Background(), task, vectors, time.Second)
	require.NoError(t, err)

	assert.True(t, result.BuildOK)
	assert.Equal(t, 1, buildAdapter.builds)
	require.Len(t, result.Vectors, 3)

	assert.Equal(t, m.VerdictPass, result.Vectors[0].Verdict)
	assert.Equal(t, m.VerdictNoGolden, result.Vectors[1].Verdict)
	assert.Equal(t, m.VerdictFail, result.Vectors[2].Verdict)
	assert.Contains(t, result.Vectors[2].Diff, "-1")
	assert.Contains(t, result.Vectors[2].Diff, "+10")
}

func TestGradeTask_BuildFailure(t *testing.T) {
	buildAdapter := &fakeBuildAdapter{
		output: "./main.go:4:2: undefined: reverse",
		err:    errors.New("go build: exit status 1"),
	}
	grader := NewGrader(adapter.NewLocalTaskFSAdapter(), buildAdapter, &fakeRunAdapter{})

	task := m.Task{Slug: "broken", Dir: m.Path(t.TempDir())}
	vectors := []m.Vector{{Name: "01", Input: []byte("1\n"), Want: []byte("1\n"), HasWant: true}}

	result, err := grader.GradeTask(context.Background(), task, vectors, time.Second)
	require.NoError(t, err)

	assert.False(t, result.BuildOK)
	assert.Contains(t, result.BuildOutput, "undefined: reverse")
	assert.Empty(t, result.Vectors)
}

func TestGradeTask_Timeout(t *testing.T) {
	runAdapter := &fakeRunAdapter{executions: map[string]m.Execution{
		"99\n": {TimedOut: true, ExitCode: -1},
	}}
	grader := NewGrader(adapter.NewLocalTaskFSAdapter(), &fakeBuildAdapter{}, runAdapter)

	task := m.Task{Slug: "slow", Dir: m.Path(t.TempDir()), Timeout: 50 * time.Millisecond}
	vectors := []m.Vector{{Name: "01", Input: []byte("99\n"), Want: []byte("99\n"), HasWant: true}}

	result, err := grader.GradeTask(context.Background(), task, vectors, time.Second)
	require.NoError(t, err)
	require.Len(t, result.Vectors, 1)

	assert.Equal(t, m.VerdictTimeout, result.Vectors[0].Verdict)
	assert.Equal(t, "no answer within 50ms", result.Vectors[0].Detail)
}

func TestGradeTask_NonZeroExit(t *testing.T) {
	runAdapter := &fakeRunAdapter{executions: map[string]m.Execution{
		"5\n": {Stdout: "8.50\n", Stderr: "panic: boom\ngoroutine 1\n", ExitCode: 2},
	}}
	grader := NewGrader(adapter.NewLocalTaskFSAdapter(), &fakeBuildAdapter{}, runAdapter)

	task := m.Task{Slug: "taxi-fare", Dir: m.Path(t.TempDir())}
	vectors := []m.Vector{{Name: "01", Input: []byte("5\n"), Want: []byte("8.50\n"), HasWant: true}}

	result, err := grader.GradeTask(context.Background(), task, vectors, time.Second)
	require.NoError(t, err)
	require.Len(t, result.Vectors, 1)

	// A crash fails the vector even when stdout happens to match.
	assert.Equal(t, m.VerdictError, result.Vectors[0].Verdict)
	assert.Equal(t, "exit status 2: panic: boom", result.Vectors[0].Detail)
}

func TestGradeTask_HiddenFailureOmitsDiff(t *testing.T) {
	runAdapter := &fakeRunAdapter{executions: map[string]m.Execution{
		"1900\n": {Stdout: "YES\n"},
	}}
	grader := NewGrader(adapter.NewLocalTaskFSAdapter(), &fakeBuildAdapter{}, runAdapter)

	task := m.Task{Slug: "leap-year", Dir: m.Path(t.TempDir())}
	vectors := []m.Vector{{Name: "h01", Input: []byte("1900\n"), Want: []byte("NO\n"), HasWant: true, Hidden: true}}

	result, err := grader.GradeTask(context.Background(), task, vectors, time.Second)
	require.NoError(t, err)
	require.Len(t, result.Vectors, 1)

	assert.Equal(t, m.VerdictFail, result.Vectors[0].Verdict)
	assert.Equal(t, "output mismatch", result.Vectors[0].Detail)
	assert.Empty(t, result.Vectors[0].Diff)
}

func TestGradeTask_NormalizedComparison(t *testing.T) {
	runAdapter := &fakeRunAdapter{executions: map[string]m.Execution{
		"3\n": {Stdout: "5.50"},
	}}
	grader := NewGrader(adapter.NewLocalTaskFSAdapter(), &fakeBuildAdapter{}, runAdapter)

	task := m.Task{Slug: "taxi-fare", Dir: m.Path(t.TempDir())}
	vectors := []m.Vector{{Name: "01", Input: []byte("3\n"), Want: []byte("5.50  \n\n"), HasWant: true}}

	result, err := grader.GradeTask(context.Background(), task, vectors, time.Second)
	require.NoError(t, err)
	require.Len(t, result.Vectors, 1)

	assert.Equal(t, m.VerdictPass, result.Vectors[0].Verdict)
}

func TestGradeTask_RunFailure(t *testing.T) {
	runAdapter := &fakeRunAdapter{err: errors.New("run bin: permission denied")}
	grader := NewGrader(adapter.NewLocalTaskFSAdapter(), &fakeBuildAdapter{}, runAdapter)

	task := m.Task{Slug: "reverse-digits", Dir: m.Path(t.TempDir())}
	vectors := []m.Vector{{Name: "01", Input: []byte("1\n"), Want: []byte("1\n"), HasWant: true}}

	result, err := grader.GradeTask(context.Background(), task, vectors, time.Second)
	require.NoError(t, err)
	require.Len(t, result.Vectors, 1)

	assert.Equal(t, m.VerdictError, result.Vectors[0].Verdict)
	assert.Contains(t, result.Vectors[0].Detail, "permission denied")
}

func TestGradeTask_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	grader := NewGrader(adapter.NewLocalTaskFSAdapter(), &fakeBuildAdapter{}, &fakeRunAdapter{})

	_, err := grader.GradeTask(ctx, m.Task{Slug: "reverse-digits"}, nil, time.Second)
	require.ErrorIs(t, err, context.Canceled)
}

func TestVectorTimeout(t *testing.T) {
	withOverride := m.Task{Slug: "a", Timeout: 3 * time.Second}
	assert.Equal(t, 3*time.Second, vectorTimeout(withOverride, 10*time.Second))

	noOverride := m.Task{Slug: "b"}
	assert.Equal(t, 10*time.Second, vectorTimeout(noOverride, 10*time.Second))
}
