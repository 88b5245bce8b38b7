package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"drill.dev/pkg/drill/internal/adapter"
	"drill.dev/pkg/drill/internal/controller"
	m "drill.dev/pkg/drill/internal/model"
	"drill.dev/pkg/drill/pkg"
)

// ErrRunFailed reports that grading finished with at least one non-passing
// vector or a build failure. The run itself completed and its report was
// saved; the error only drives the exit code.
var ErrRunFailed = errors.New("grading failed")

// RunArgs contains the arguments for grading a set of tasks.
type RunArgs struct {
	TasksRoot       m.Path
	HiddenRoot      m.Path
	Reports         m.Path
	HistoryDB       m.Path
	Names           []string
	Suite           m.Suite
	Threads         int
	ShardIndex      int
	TotalShardCount int
	RunTimeout      time.Duration
}

// ListArgs contains the arguments for listing tasks.
type ListArgs struct {
	TasksRoot  m.Path
	HiddenRoot m.Path
	Names      []string
}

// ViewArgs contains the arguments for viewing a saved report.
type ViewArgs struct {
	Reports m.Path
	Task    string
}

// MergeArgs contains the arguments for merging shard reports.
type MergeArgs struct {
	Reports   m.Path
	HistoryDB m.Path
}

// HistoryArgs contains the arguments for listing past runs.
type HistoryArgs struct {
	Database m.Path
	Limit    int
}

// OpenHistoryFunc opens the history store backing a database path.
type OpenHistoryFunc func(path m.Path) (adapter.HistoryStore, error)

// Workflow defines the interface for grading workflow operations.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	Watch(ctx context.Context, args RunArgs) error
	History(ctx context.Context, args HistoryArgs) error
}

type workflow struct {
	adapter.TaskFSAdapter
	adapter.ReportStore
	adapter.WatchAdapter
	controller.UI
	TaskStreamer
	Grader

	openHistory OpenHistoryFunc
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.TaskFSAdapter,
	reportStore adapter.ReportStore,
	watchAdapter adapter.WatchAdapter,
	ui controller.UI,
	streamer TaskStreamer,
	grader Grader,
	openHistory OpenHistoryFunc,
) Workflow {
	return &workflow{
		TaskFSAdapter: fsAdapter,
		ReportStore:   reportStore,
		WatchAdapter:  watchAdapter,
		UI:            ui,
		TaskStreamer:  streamer,
		Grader:        grader,
		openHistory:   openHistory,
	}
}

// Run grades the selected tasks, saves the report and displays it.
// It returns ErrRunFailed when the finished report is not clean.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	threads := normalizeThreads(args.Threads)
	w.DisplayConcurrencyInfo(ctx, threads, args.ShardIndex, args.TotalShardCount)

	if args.Suite != m.SuitePublic && args.HiddenRoot == "" {
		slog.Debug("No hidden root configured, grading public vectors only")
	}

	started := time.Now().UTC()

	results, err := pkg.NewSpool[m.TaskResult]()
	if err != nil {
		w.Close(ctx)
		return fmt.Errorf("create result spool: %w", err)
	}

	defer discardSpool(results)

	if err := w.gradeTasks(ctx, args, threads, results); err != nil {
		w.Close(ctx)
		slog.Error("Failed to grade tasks", "error", err)

		return fmt.Errorf("grade tasks: %w", err)
	}

	report, err := w.assembleReport(args, started, results)
	if err != nil {
		w.Close(ctx)
		return fmt.Errorf("assemble report: %w", err)
	}

	if err := w.saveRunReport(args, report); err != nil {
		w.Close(ctx)
		slog.Error("Failed to save report", "error", err)

		return fmt.Errorf("save report: %w", err)
	}

	if args.HistoryDB != "" {
		w.recordHistory(ctx, args.HistoryDB, report)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display report", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	// Wait for UI to be closed by user (press 'q')
	w.Wait(ctx)
	w.Close(ctx)

	if !report.Clean() {
		return ErrRunFailed
	}

	return nil
}

// gradeTasks fans the streamed tasks out over a worker pool and spools every
// task result. The streamer's error channel is drained after the pool stops.
func (w *workflow) gradeTasks(ctx context.Context, args RunArgs, threads int, results pkg.Spool[m.TaskResult]) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	allTasks, errCh := w.Get(groupCtx, args.TasksRoot, args.Names, threads)
	shardTasks := w.ShardTasks(groupCtx, allTasks, threads, args.ShardIndex, args.TotalShardCount)

	var resultsMutex sync.Mutex

	for task := range shardTasks {
		currentTask := task

		group.Go(func() error {
			w.DisplayTaskStartInfo(groupCtx, currentTask)

			vectors, err := w.loadVectors(groupCtx, currentTask, args)
			if err != nil {
				return err
			}

			result, err := w.GradeTask(groupCtx, currentTask, vectors, args.RunTimeout)
			if err != nil {
				return err
			}

			w.DisplayTaskResultInfo(groupCtx, result)

			resultsMutex.Lock()
			defer resultsMutex.Unlock()

			return results.Append(result)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	// A closed channel yields nil; a discovery failure surfaces here.
	if err := <-errCh; err != nil {
		return err
	}

	return nil
}

// loadVectors gathers the vectors the selected suite covers for one task.
func (w *workflow) loadVectors(ctx context.Context, task m.Task, args RunArgs) ([]m.Vector, error) {
	var vectors []m.Vector

	if args.Suite != m.SuiteHidden {
		public, err := w.PublicVectors(ctx, task)
		if err != nil {
			return nil, fmt.Errorf("load public vectors for %s: %w", task.Slug, err)
		}

		vectors = append(vectors, public...)
	}

	if args.Suite != m.SuitePublic && args.HiddenRoot != "" {
		hidden, err := w.HiddenVectors(ctx, task, args.HiddenRoot)
		if err != nil {
			return nil, fmt.Errorf("load hidden vectors for %s: %w", task.Slug, err)
		}

		vectors = append(vectors, hidden...)
	}

	return vectors, nil
}

// assembleReport drains the result spool into a finished report.
func (w *workflow) assembleReport(args RunArgs, started time.Time, results pkg.Spool[m.TaskResult]) (m.Report, error) {
	var tasks []m.TaskResult

	err := results.Range(func(_ uint64, result m.TaskResult) error {
		tasks = append(tasks, result)
		return nil
	})
	if err != nil {
		return m.Report{}, err
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Task < tasks[j].Task
	})

	score, err := scoreFromResults(results)
	if err != nil {
		return m.Report{}, err
	}

	report := m.Report{
		ID:       uuid.NewString(),
		Suite:    args.Suite,
		Started:  started,
		Finished: time.Now().UTC(),
		Tasks:    tasks,
		Tally:    assembleTally(tasks),
		Score:    score,
	}

	if args.TotalShardCount > 1 {
		report.Shard = fmt.Sprintf("%d/%d", args.ShardIndex, args.TotalShardCount)
	}

	return report, nil
}

// saveRunReport writes either the shard file or the full report.
func (w *workflow) saveRunReport(args RunArgs, report m.Report) error {
	if args.TotalShardCount > 1 {
		return w.SaveShard(args.Reports, args.ShardIndex, report)
	}

	return w.SaveReport(args.Reports, report)
}

// List displays every task under the tasks root with its vector counts.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	summaries, err := w.summarizeTasks(ctx, args)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to summarize tasks", "error", err)

		return err
	}

	if err := w.DisplayTasks(ctx, summaries); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display tasks", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) summarizeTasks(ctx context.Context, args ListArgs) ([]m.TaskSummary, error) {
	tasks, err := w.Discover(ctx, args.TasksRoot)
	if err != nil {
		return nil, fmt.Errorf("discover tasks: %w", err)
	}

	tasks = filterTasks(tasks, args.Names)

	summaries := make([]m.TaskSummary, 0, len(tasks))

	for _, task := range tasks {
		public, err := w.PublicVectors(ctx, task)
		if err != nil {
			return nil, fmt.Errorf("load public vectors for %s: %w", task.Slug, err)
		}

		var hidden []m.Vector

		if args.HiddenRoot != "" {
			hidden, err = w.HiddenVectors(ctx, task, args.HiddenRoot)
			if err != nil {
				return nil, fmt.Errorf("load hidden vectors for %s: %w", task.Slug, err)
			}
		}

		summaries = append(summaries, m.TaskSummary{
			Task:   task,
			Public: len(public),
			Hidden: len(hidden),
		})
	}

	return summaries, nil
}

// View loads a saved report and displays it, optionally narrowed to one task.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if args.Task != "" {
		report, err = narrowReport(report, args.Task)
		if err != nil {
			return err
		}
	}

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display report", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// narrowReport keeps only the named task and recomputes the totals so the
// displayed tally matches what is shown.
func narrowReport(report m.Report, slug string) (m.Report, error) {
	for _, task := range report.Tasks {
		if task.Task != slug {
			continue
		}

		report.Tasks = []m.TaskResult{task}
		report.Tally = assembleTally(report.Tasks)
		report.Score = scoreFromTasks(report.Tasks)

		return report, nil
	}

	return m.Report{}, fmt.Errorf("task %q not found in report", slug)
}

// Merge combines every saved shard report into a single report and saves it.
// Like Run it returns ErrRunFailed when the merged report is not clean, so a
// sharded CI pipeline can gate on the merge step.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	shards, err := w.LoadShards(args.Reports)
	if err != nil {
		return fmt.Errorf("load shards: %w", err)
	}

	if len(shards) == 0 {
		return fmt.Errorf("no shard reports found in %s", args.Reports)
	}

	merged := mergeReports(shards)

	if err := w.SaveReport(args.Reports, merged); err != nil {
		slog.Error("Failed to save merged report", "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	if args.HistoryDB != "" {
		w.recordHistory(ctx, args.HistoryDB, merged)
	}

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayReport(ctx, merged); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display report", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	if !merged.Clean() {
		return ErrRunFailed
	}

	return nil
}

// mergeReports folds shard reports into one report spanning all of them.
func mergeReports(shards []m.Report) m.Report {
	merged := m.Report{
		ID:       uuid.NewString(),
		Suite:    shards[0].Suite,
		Started:  shards[0].Started,
		Finished: shards[0].Finished,
	}

	var tasks []m.TaskResult

	for _, shard := range shards {
		if shard.Started.Before(merged.Started) {
			merged.Started = shard.Started
		}

		if shard.Finished.After(merged.Finished) {
			merged.Finished = shard.Finished
		}

		tasks = append(tasks, shard.Tasks...)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Task < tasks[j].Task
	})

	merged.Tasks = tasks
	merged.Tally = assembleTally(tasks)
	merged.Score = scoreFromTasks(tasks)

	return merged
}

// Watch grades once, then regrades every time a task source changes.
// A failing run is normal in watch mode and does not stop the loop.
func (w *workflow) Watch(ctx context.Context, args RunArgs) error {
	if err := w.Run(ctx, args); err != nil && !errors.Is(err, ErrRunFailed) {
		return err
	}

	tasks, err := w.Discover(ctx, args.TasksRoot)
	if err != nil {
		return fmt.Errorf("discover tasks: %w", err)
	}

	dirs := make([]m.Path, 0, len(tasks)+1)
	dirs = append(dirs, args.TasksRoot)

	for _, task := range tasks {
		dirs = append(dirs, task.Dir)
	}

	// Serializes reruns so overlapping change bursts queue instead of racing.
	var rerunMutex sync.Mutex

	rerun := func() {
		rerunMutex.Lock()
		defer rerunMutex.Unlock()

		if ctx.Err() != nil {
			return
		}

		if err := w.Run(ctx, args); err != nil && !errors.Is(err, ErrRunFailed) {
			slog.Error("Failed to regrade after change", "error", err)
		}
	}

	return w.WatchAdapter.Watch(ctx, dirs, rerun)
}

// History displays the most recent grading runs from the history database.
func (w *workflow) History(ctx context.Context, args HistoryArgs) error {
	store, err := w.openHistory(args.Database)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}

	defer closeHistory(store)

	runs, err := store.RecentRuns(ctx, args.Limit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayHistory(ctx, runs); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display history", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// recordHistory stores the run tally. Failures are logged, not fatal: the
// report on disk remains the source of truth.
func (w *workflow) recordHistory(ctx context.Context, database m.Path, report m.Report) {
	store, err := w.openHistory(database)
	if err != nil {
		slog.Error("Failed to open history store", "database", database, "error", err)
		return
	}

	defer closeHistory(store)

	if err := store.RecordRun(ctx, report); err != nil {
		slog.Error("Failed to record run", "database", database, "error", err)
	}
}

func closeHistory(store adapter.HistoryStore) {
	if err := store.Close(); err != nil {
		slog.Error("Failed to close history store", "error", err)
	}
}

// assembleTally counts every vector verdict across the task results.
func assembleTally(tasks []m.TaskResult) m.Tally {
	var tally m.Tally

	for _, task := range tasks {
		for _, vector := range task.Vectors {
			tally.Add(vector.Verdict)
		}
	}

	return tally
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

// discardSpool closes the spool and removes its backing file.
func discardSpool(results pkg.Spool[m.TaskResult]) {
	if err := results.Close(); err != nil {
		slog.Error("Failed to close result spool", "error", err)
	}

	if err := os.Remove(results.Path()); err != nil {
		slog.Error("Failed to remove result spool", "path", results.Path(), "error", err)
	}
}
