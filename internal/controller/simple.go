package controller

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "drill.dev/pkg/drill/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayTasks prints every discovered task with its vector counts.
func (s *SimpleUI) DisplayTasks(ctx context.Context, summaries []m.TaskSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderTaskTable(summaries))

	return nil
}

func renderTaskTable(summaries []m.TaskSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Task", "Name", "Public", "Hidden", "Timeout"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalPublic := 0
	totalHidden := 0

	for _, summary := range summaries {
		table.Append([]string{
			summary.Task.Slug,
			summary.Task.Name,
			fmt.Sprintf("%d", summary.Public),
			fmt.Sprintf("%d", summary.Hidden),
			timeoutLabel(summary.Task.Timeout),
		})

		totalPublic += summary.Public
		totalHidden += summary.Hidden
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Tasks %d", len(summaries)),
		"",
		fmt.Sprintf("%d", totalPublic),
		fmt.Sprintf("%d", totalHidden),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// timeoutLabel renders a manifest timeout, falling back to a marker for
// tasks that rely on the configured default.
func timeoutLabel(timeout time.Duration) string {
	if timeout == 0 {
		return "default"
	}

	return timeout.String()
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if shardCount > 1 {
		s.printf("Grading with %d worker(s) (shard %d/%d)\n", threads, shardIndex, shardCount)
		return
	}

	s.printf("Grading with %d worker(s)\n", threads)
}

// DisplayTaskStartInfo shows info about a task starting to grade.
func (s *SimpleUI) DisplayTaskStartInfo(ctx context.Context, task m.Task) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Grading %s\n", task.Slug)
}

// DisplayTaskResultInfo shows the per-task outcome as soon as it is graded.
func (s *SimpleUI) DisplayTaskResultInfo(ctx context.Context, result m.TaskResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !result.BuildOK {
		s.printf("Completed %s -> build failed\n", result.Task)
		return
	}

	tally := tallyVectors(result)
	s.printf("Completed %s -> %d/%d passed\n", result.Task, tally.PassedTotal(), tally.Total())
}

// DisplayReport prints the report table, failure details and the final score.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderReportTable(report))
	s.printFailures(report)
	s.printf("\nScore: %.2f%%\n", report.Score*100)

	return nil
}

func renderReportTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Task", "Build", "Pass", "Fail", "Timeout", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	for _, task := range report.Tasks {
		build := "ok"
		if !task.BuildOK {
			build = "failed"
		}

		tally := tallyVectors(task)

		table.Append([]string{
			task.Task,
			build,
			fmt.Sprintf("%d", tally.PassedTotal()),
			fmt.Sprintf("%d", tally.Failed),
			fmt.Sprintf("%d", tally.TimedOut),
			fmt.Sprintf("%d", tally.Errored),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Tasks %d", len(report.Tasks)),
		"",
		fmt.Sprintf("%d", report.Tally.PassedTotal()),
		fmt.Sprintf("%d", report.Tally.Failed),
		fmt.Sprintf("%d", report.Tally.TimedOut),
		fmt.Sprintf("%d", report.Tally.Errored),
	})

	table.Render()

	return tableBuffer.String()
}

// printFailures lists every non-passing vector with its detail and diff.
func (s *SimpleUI) printFailures(report m.Report) {
	for _, task := range report.Tasks {
		if !task.BuildOK {
			s.printf("\nBuild failed for %s:\n%s\n", task.Task, task.BuildOutput)
			continue
		}

		for _, vector := range task.Vectors {
			if vector.Verdict.Passing() {
				continue
			}

			s.printf("\n%s/%s: %s", task.Task, vector.Vector, vector.Verdict)

			if vector.Detail != "" {
				s.printf(" (%s)", vector.Detail)
			}

			s.printf("\n")

			if vector.Diff != "" {
				s.printf("%s\n", vector.Diff)
			}
		}
	}
}

// DisplayHistory prints recent runs, newest first.
func (s *SimpleUI) DisplayHistory(ctx context.Context, runs []m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(runs) == 0 {
		s.printf("No recorded runs\n")
		return nil
	}

	s.printf("\n%s", renderHistoryTable(runs))

	return nil
}

func renderHistoryTable(runs []m.RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Finished", "Suite", "Tasks", "Vectors", "Passed", "Failed", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, run := range runs {
		failed := run.Failed + run.TimedOut + run.Errored

		table.Append([]string{
			run.Finished.Local().Format("2006-01-02 15:04:05"),
			string(run.Suite),
			fmt.Sprintf("%d", run.Tasks),
			fmt.Sprintf("%d", run.Vectors),
			fmt.Sprintf("%d", run.Passed+run.NoGolden),
			fmt.Sprintf("%d", failed),
			fmt.Sprintf("%.2f%%", run.Score*100),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func tallyVectors(result m.TaskResult) m.Tally {
	var tally m.Tally

	for _, vector := range result.Vectors {
		tally.Add(vector.Verdict)
	}

	return tally
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
