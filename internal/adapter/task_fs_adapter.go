// Package adapter contains UI and infrastructure adapters for the Drill CLI.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	m "drill.dev/pkg/drill/internal/model"
)

const (
	manifestName   = "task.toml"
	vectorsDirName = "testdata"
	inputExt       = ".in"
	goldenExt      = ".out"
	solutionName   = "main.go"
)

// TaskFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning task directories. It intentionally hides direct `os`
// access so the workflow logic can be tested without touching the disk.
type TaskFSAdapter interface {
	// Discover lists every task directory directly under root, sorted by slug.
	// A directory counts as a task when it contains a main.go file.
	Discover(ctx context.Context, root m.Path) ([]m.Task, error)

	// PublicVectors loads the vectors shipped inside the task directory.
	PublicVectors(ctx context.Context, task m.Task) ([]m.Vector, error)

	// HiddenVectors loads the vectors stored under hiddenRoot for the task.
	// A missing directory yields no vectors and no error.
	HiddenVectors(ctx context.Context, task m.Task, hiddenRoot m.Path) ([]m.Vector, error)

	// CreateTempDir creates a temporary directory for build artifacts.
	CreateTempDir(ctx context.Context, pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// taskManifest mirrors the optional task.toml file inside a task directory.
type taskManifest struct {
	Name    string `toml:"name"`
	Timeout string `toml:"timeout"`
}

// LocalTaskFSAdapter is the concrete implementation backing TaskFSAdapter
// with plain os and filepath calls.
type LocalTaskFSAdapter struct{}

// NewLocalTaskFSAdapter constructs a LocalTaskFSAdapter instance ready to be
// wired into the workflow.
func NewLocalTaskFSAdapter() *LocalTaskFSAdapter {
	return &LocalTaskFSAdapter{}
}

// Discover lists task directories under root. Directories without a main.go
// are skipped, as are hidden and underscore-prefixed entries.
func (a *LocalTaskFSAdapter) Discover(_ context.Context, root m.Path) ([]m.Task, error) {
	entries, err := os.ReadDir(string(root))
	if err != nil {
		return nil, fmt.Errorf("list tasks in %s: %w", root, err)
	}

	var tasks []m.Task

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		slug := entry.Name()
		if strings.HasPrefix(slug, ".") || strings.HasPrefix(slug, "_") {
			continue
		}

		dir := filepath.Join(string(root), slug)
		if _, err := os.Stat(filepath.Join(dir, solutionName)); err != nil {
			continue
		}

		task := m.Task{
			Slug: slug,
			Name: slug,
			Dir:  m.Path(dir),
		}

		if err := a.applyManifest(&task); err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// applyManifest overlays the optional task.toml onto the task defaults.
func (a *LocalTaskFSAdapter) applyManifest(task *m.Task) error {
	path := filepath.Join(string(task.Dir), manifestName)

	content, err := os.ReadFile(path) // #nosec G304 - path is derived from the tasks root, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("read manifest %s: %w", path, err)
	}

	var manifest taskManifest
	if err := toml.Unmarshal(content, &manifest); err != nil {
		return fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if manifest.Name != "" {
		task.Name = manifest.Name
	}

	if manifest.Timeout != "" {
		timeout, err := time.ParseDuration(manifest.Timeout)
		if err != nil {
			return fmt.Errorf("parse timeout in %s: %w", path, err)
		}

		task.Timeout = timeout
	}

	return nil
}

// PublicVectors loads the vectors from the testdata directory of the task.
func (a *LocalTaskFSAdapter) PublicVectors(_ context.Context, task m.Task) ([]m.Vector, error) {
	dir := filepath.Join(string(task.Dir), vectorsDirName)

	return loadVectors(dir, false)
}

// HiddenVectors loads the vectors from <hiddenRoot>/<slug>.
func (a *LocalTaskFSAdapter) HiddenVectors(_ context.Context, task m.Task, hiddenRoot m.Path) ([]m.Vector, error) {
	if hiddenRoot == "" {
		return nil, nil
	}

	dir := filepath.Join(string(hiddenRoot), task.Slug)

	return loadVectors(dir, true)
}

// loadVectors pairs every *.in file in dir with its *.out golden, if present.
func loadVectors(dir string, hidden bool) ([]m.Vector, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("list vectors in %s: %w", dir, err)
	}

	var vectors []m.Vector

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, inputExt) {
			continue
		}

		input, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304 - vector files live under the tasks root
		if err != nil {
			return nil, fmt.Errorf("read vector input %s: %w", name, err)
		}

		vector := m.Vector{
			Name:   strings.TrimSuffix(name, inputExt),
			Input:  input,
			Hidden: hidden,
		}

		goldenPath := filepath.Join(dir, vector.Name+goldenExt)

		want, err := os.ReadFile(goldenPath) // #nosec G304 - vector files live under the tasks root
		switch {
		case err == nil:
			vector.Want = want
			vector.HasWant = true
		case os.IsNotExist(err):
			// Smoke vector: run it, only check the exit status.
		default:
			return nil, fmt.Errorf("read vector golden %s: %w", goldenPath, err)
		}

		vectors = append(vectors, vector)
	}

	return vectors, nil
}

// CreateTempDir creates a temporary directory for build artifacts.
func (a *LocalTaskFSAdapter) CreateTempDir(_ context.Context, pattern string) (m.Path, error) {
	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalTaskFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalTaskFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
