package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	m "drill.dev/pkg/drill/internal/model"
)

// defaultRunTimeout bounds a single vector execution when the task manifest
// does not set one.
const defaultRunTimeout = 10 * time.Second

// RunAdapter abstracts executing a built task binary against vector input.
type RunAdapter interface {
	// Run executes bin with input on stdin and returns the captured streams,
	// the exit code and whether the timeout elapsed. A non-zero exit status
	// is reported through the Execution, not as an error.
	Run(ctx context.Context, bin m.Path, input []byte, timeout time.Duration) (m.Execution, error)
}

// LocalRunAdapter executes task binaries as local subprocesses.
type LocalRunAdapter struct{}

// NewLocalRunAdapter constructs a LocalRunAdapter instance ready to be wired
// into the workflow.
func NewLocalRunAdapter() *LocalRunAdapter {
	return &LocalRunAdapter{}
}

// Run executes bin with input on stdin. The working directory is the binary's
// parent so solutions that open sibling files behave as under a local run.
func (a *LocalRunAdapter) Run(ctx context.Context, bin m.Path, input []byte, timeout time.Duration) (m.Execution, error) {
	if timeout <= 0 {
		timeout = defaultRunTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// #nosec G204 - bin is produced by the build adapter, not user input
	cmd := exec.CommandContext(runCtx, string(bin))
	cmd.Dir = filepath.Dir(string(bin))
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()

	execution := m.Execution{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(started),
	}

	if err == nil {
		return execution, nil
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		execution.TimedOut = true
		execution.ExitCode = -1

		return execution, nil
	}

	if ctx.Err() != nil {
		return execution, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		execution.ExitCode = exitErr.ExitCode()

		return execution, nil
	}

	return execution, fmt.Errorf("run %s: %w", bin, err)
}
