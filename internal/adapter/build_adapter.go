package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	m "drill.dev/pkg/drill/internal/model"
)

// defaultBuildTimeout bounds a single task compilation.
const defaultBuildTimeout = 60 * time.Second

// BuildAdapter abstracts compiling a task directory into a runnable binary.
type BuildAdapter interface {
	// Build compiles the main package in dir into the binary at out.
	// Returns the combined compiler output and any error.
	Build(ctx context.Context, dir, out m.Path) (output string, err error)
}

// LocalBuildAdapter provides a concrete implementation using the go toolchain.
type LocalBuildAdapter struct {
	timeout time.Duration
}

// NewLocalBuildAdapter constructs a LocalBuildAdapter with the default build timeout.
func NewLocalBuildAdapter() *LocalBuildAdapter {
	return &LocalBuildAdapter{
		timeout: defaultBuildTimeout,
	}
}

// Build compiles the main package in dir into the binary at out.
func (a *LocalBuildAdapter) Build(ctx context.Context, dir, out m.Path) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "build", "-o", string(out), ".")
	cmd.Dir = string(dir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()
	if err != nil {
		return output, fmt.Errorf("go build %s: %w", dir, err)
	}

	return output, nil
}
