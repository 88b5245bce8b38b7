package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"drill.dev/pkg/drill/internal/adapter"
	m "drill.dev/pkg/drill/internal/model"
)

// TaskStreamer defines the interface for streaming discovered tasks.
type TaskStreamer interface {
	Get(ctx context.Context, root m.Path, names []string, threads int) (<-chan m.Task, <-chan error)
	ShardTasks(ctx context.Context, allTasks <-chan m.Task, threads int, shardIndex, totalShardCount int) <-chan m.Task
}

type taskStreamer struct {
	adapter.TaskFSAdapter
}

// NewTaskStreamer creates a new TaskStreamer instance with the provided dependencies.
func NewTaskStreamer(fsAdapter adapter.TaskFSAdapter) TaskStreamer {
	return &taskStreamer{
		TaskFSAdapter: fsAdapter,
	}
}

// Get streams tasks found under root, optionally filtered to the given names.
// Both channels close when done; discovery failures arrive on the error channel.
func (ts *taskStreamer) Get(ctx context.Context, root m.Path, names []string, threads int) (<-chan m.Task, <-chan error) {
	slog.Debug("Starting task streaming", "root", root, "threads", threads)
	ch := make(chan m.Task, ts.normalizeBufferSize(threads))
	errCh := make(chan error, 1)

	go func() {
		defer close(ch)
		defer close(errCh)

		tasks, err := ts.Discover(ctx, root)
		if err != nil {
			slog.Error("Failed to discover tasks", "root", root, "error", err)
			errCh <- fmt.Errorf("discover tasks: %w", err)

			return
		}

		tasks = filterTasks(tasks, names)

		// Sort tasks by slug for deterministic ordering across processes
		sort.Slice(tasks, func(i, j int) bool {
			return tasks[i].Slug < tasks[j].Slug
		})

		slog.Debug("Discovered tasks", "count", len(tasks))

		for _, task := range tasks {
			select {
			case <-ctx.Done():
				slog.Debug("Task streaming cancelled")
				return
			case ch <- task:
			}
		}
	}()

	return ch, errCh
}

// normalizeBufferSize ensures the buffer size is at least 1.
func (ts *taskStreamer) normalizeBufferSize(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

// filterTasks keeps only tasks whose slug appears in names. An empty names
// list keeps everything; names matching no task filter silently to nothing.
func filterTasks(tasks []m.Task, names []string) []m.Task {
	if len(names) == 0 {
		return tasks
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	filtered := make([]m.Task, 0, len(tasks))

	for _, task := range tasks {
		if wanted[task.Slug] {
			filtered = append(filtered, task)
		}
	}

	return filtered
}

// ShardTasks filters tasks by shard index using round-robin distribution.
// It streams only tasks that belong to the specified shard.
func (ts *taskStreamer) ShardTasks(ctx context.Context, allTasks <-chan m.Task, threads int, shardIndex, totalShardCount int) <-chan m.Task {
	ch := make(chan m.Task, ts.normalizeBufferSize(threads))

	go func() {
		defer close(ch)

		// If sharding is disabled, pass through all tasks
		if totalShardCount <= 0 {
			slog.Debug("Sharding disabled, passing through all tasks")
			ts.passThroughTasks(ctx, allTasks, ch)

			return
		}

		slog.Debug("Starting task sharding", "shardIndex", shardIndex, "totalShardCount", totalShardCount)
		ts.filterTasksByShard(ctx, allTasks, ch, shardIndex, totalShardCount)
	}()

	return ch
}

// passThroughTasks forwards all tasks from input to output channel.
func (ts *taskStreamer) passThroughTasks(ctx context.Context, in <-chan m.Task, out chan<- m.Task) {
	for task := range in {
		select {
		case <-ctx.Done():
			slog.Debug("Task pass-through cancelled")
			return
		case out <- task:
		}
	}
}

// filterTasksByShard filters tasks using round-robin shard assignment.
func (ts *taskStreamer) filterTasksByShard(ctx context.Context, in <-chan m.Task, out chan<- m.Task, shardIndex, totalShardCount int) {
	index := 0

	for task := range in {
		select {
		case <-ctx.Done():
			slog.Debug("Task sharding cancelled")
			return
		default:
		}

		if index%totalShardCount == shardIndex {
			select {
			case <-ctx.Done():
				return
			case out <- task:
			}
		}

		index++
	}
}
