package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"drill.dev/pkg/drill/internal/adapter"
	m "drill.dev/pkg/drill/internal/model"
)

// Grader coordinates compiling one task in a scratch directory and running
// its vectors against the produced binary.
type Grader interface {
	GradeTask(ctx context.Context, task m.Task, vectors []m.Vector, fallbackTimeout time.Duration) (m.TaskResult, error)
}

type grader struct {
	fsAdapter    adapter.TaskFSAdapter
	buildAdapter adapter.BuildAdapter
	runAdapter   adapter.RunAdapter
}

// NewGrader constructs a Grader backed by the provided filesystem, build and
// run adapters.
func NewGrader(fsAdapter adapter.TaskFSAdapter, buildAdapter adapter.BuildAdapter, runAdapter adapter.RunAdapter) Grader {
	return &grader{
		fsAdapter:    fsAdapter,
		buildAdapter: buildAdapter,
		runAdapter:   runAdapter,
	}
}

// GradeTask builds the task once and grades every vector against the binary.
// A compile failure yields a result with BuildOK false and no vectors; it is
// data, not an error.
func (g *grader) GradeTask(ctx context.Context, task m.Task, vectors []m.Vector, fallbackTimeout time.Duration) (m.TaskResult, error) {
	if err := ctx.Err(); err != nil {
		return m.TaskResult{}, err
	}

	result := m.TaskResult{Task: task.Slug}

	tmpDir, err := g.fsAdapter.CreateTempDir(ctx, "drill-build-*")
	if err != nil {
		slog.Error("Failed to create temp dir", "task", task.Slug, "error", err)
		return m.TaskResult{}, fmt.Errorf("create temp dir: %w", err)
	}

	defer g.cleanupTempDir(ctx, tmpDir)

	bin := g.fsAdapter.JoinPath(ctx, string(tmpDir), task.Slug)

	buildOutput, err := g.buildAdapter.Build(ctx, task.Dir, bin)
	if err != nil {
		slog.Debug("Build failed", "task", task.Slug, "error", err)

		result.BuildOutput = buildOutput

		return result, nil
	}

	result.BuildOK = true
	timeout := vectorTimeout(task, fallbackTimeout)

	for _, vector := range vectors {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		vectorResult, err := g.gradeVector(ctx, task, bin, vector, timeout)
		if err != nil {
			return result, err
		}

		result.Vectors = append(result.Vectors, vectorResult)
	}

	return result, nil
}

// vectorTimeout resolves the effective per-vector timeout for a task.
func vectorTimeout(task m.Task, fallback time.Duration) time.Duration {
	if task.Timeout > 0 {
		return task.Timeout
	}

	return fallback
}

func (g *grader) gradeVector(ctx context.Context, task m.Task, bin m.Path, vector m.Vector, timeout time.Duration) (m.VectorResult, error) {
	result := m.VectorResult{
		Task:   task.Slug,
		Vector: vector.Name,
		Hidden: vector.Hidden,
	}

	execution, err := g.runAdapter.Run(ctx, bin, vector.Input, timeout)
	if err != nil {
		if ctx.Err() != nil {
			return m.VectorResult{}, ctx.Err()
		}

		slog.Error("Failed to run task binary", "task", task.Slug, "vector", vector.Name, "error", err)

		result.Verdict = m.VerdictError
		result.Detail = err.Error()

		return result, nil
	}

	result.Duration = execution.Duration

	switch {
	case execution.TimedOut:
		result.Verdict = m.VerdictTimeout
		result.Detail = fmt.Sprintf("no answer within %s", timeout)
	case execution.ExitCode != 0:
		// Exit status is checked before any output comparison.
		result.Verdict = m.VerdictError
		result.Detail = exitDetail(execution)
	case !vector.HasWant:
		result.Verdict = m.VerdictNoGolden
	default:
		compareOutput(&result, vector, execution)
	}

	return result, nil
}

// compareOutput fills in the verdict for a vector that has a golden file.
func compareOutput(result *m.VectorResult, vector m.Vector, execution m.Execution) {
	want := normalizeOutput(string(vector.Want))
	got := normalizeOutput(execution.Stdout)

	if want == got {
		result.Verdict = m.VerdictPass
		return
	}

	result.Verdict = m.VerdictFail

	if vector.Hidden {
		// Hidden goldens stay hidden; record the mismatch without content.
		result.Detail = "output mismatch"
		return
	}

	result.Diff = unifiedDiff(want, got)
}

// exitDetail summarizes a non-zero exit, folding in the first stderr line.
func exitDetail(execution m.Execution) string {
	detail := fmt.Sprintf("exit status %d", execution.ExitCode)

	stderr := strings.TrimSpace(execution.Stderr)
	if stderr == "" {
		return detail
	}

	firstLine, _, _ := strings.Cut(stderr, "\n")

	return detail + ": " + firstLine
}

// unifiedDiff renders a want/got diff for failed public vectors.
func unifiedDiff(want, got string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want + "\n"),
		B:        difflib.SplitLines(got + "\n"),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		slog.Warn("Failed to render diff", "error", err)
		return ""
	}

	return diff
}

// cleanupTempDir removes the temporary directory, logging errors if cleanup fails.
func (g *grader) cleanupTempDir(ctx context.Context, tmpDir m.Path) {
	if err := g.fsAdapter.RemoveAll(ctx, tmpDir); err != nil {
		slog.Error("Failed to cleanup temp dir", "tmpDir", tmpDir, "error", err)
	}
}
