package controller

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "drill.dev/pkg/drill/internal/model"
)

func manyLines(count int) []string {
	lines := make([]string, count)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}

	return lines
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func updateModel(t *testing.T, model pagerModel, msg tea.Msg) pagerModel {
	t.Helper()

	updated, _ := model.Update(msg)

	pm, ok := updated.(pagerModel)
	require.True(t, ok)

	return pm
}

func TestPagerModel_WindowSize(t *testing.T) {
	model := newPagerModel("Tasks", manyLines(3), nil)

	model = updateModel(t, model, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, model.width)
	assert.Equal(t, 24, model.height)
}

func TestPagerModel_Scrolling(t *testing.T) {
	model := newPagerModel("Report", manyLines(30), nil)
	model.height = 20 // 8 content lines per page

	model = updateModel(t, model, keyRune('j'))
	assert.Equal(t, 1, model.offset)

	model = updateModel(t, model, keyRune('k'))
	assert.Equal(t, 0, model.offset)

	// Up at the top stays clamped.
	model = updateModel(t, model, keyRune('k'))
	assert.Equal(t, 0, model.offset)

	model = updateModel(t, model, keyRune('G'))
	assert.Equal(t, 22, model.offset)

	// Down at the bottom stays clamped.
	model = updateModel(t, model, keyRune('j'))
	assert.Equal(t, 22, model.offset)

	model = updateModel(t, model, keyRune('g'))
	assert.Equal(t, 0, model.offset)

	model = updateModel(t, model, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 8, model.offset)

	model = updateModel(t, model, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, model.offset)
}

func TestPagerModel_Quit(t *testing.T) {
	model := newPagerModel("Report", manyLines(30), nil)
	model.height = 20

	updated, cmd := model.Update(keyRune('q'))

	pm, ok := updated.(pagerModel)
	require.True(t, ok)
	assert.True(t, pm.quitting)
	require.NotNil(t, cmd)
}

func TestPagerModel_View_Static(t *testing.T) {
	model := newPagerModel("Tasks", []string{"first", "second"}, []string{"2 task(s)"})

	view := model.View()

	assert.Contains(t, view, "Tasks")
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "second")
	assert.Contains(t, view, "2 task(s)")
	assert.NotContains(t, view, "Lines")
}

func TestPagerModel_View_Empty(t *testing.T) {
	model := newPagerModel("Tasks", nil, nil)

	assert.Contains(t, model.View(), "Nothing to show")
}

func TestPagerModel_View_Paginated(t *testing.T) {
	model := newPagerModel("Report", manyLines(30), nil)
	model.height = 20

	view := model.View()

	assert.Contains(t, view, "line 0")
	assert.Contains(t, view, "line 7")
	assert.NotContains(t, view, "line 8")
	assert.Contains(t, view, "Lines 1-8 of 30")
	assert.Contains(t, view, "q: quit")
}

func TestPagerModel_NeedsPagination(t *testing.T) {
	model := newPagerModel("Report", manyLines(30), nil)

	// Unknown terminal size prints everything statically.
	assert.False(t, model.needsPagination())

	model.height = 20
	assert.True(t, model.needsPagination())

	model.lines = manyLines(3)
	assert.False(t, model.needsPagination())
}

func TestTUI_DisplayReport_PrintsStatically(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	report := m.Report{
		Suite: m.SuiteAll,
		Tasks: []m.TaskResult{
			{
				Task:    "leap-year",
				BuildOK: true,
				Vectors: []m.VectorResult{
					{Vector: "01", Verdict: m.VerdictPass},
					{Vector: "02", Verdict: m.VerdictFail, Detail: "output mismatch", Diff: "-YES\n+NO\n"},
				},
			},
		},
		Tally: m.Tally{Passed: 1, Failed: 1},
		Score: 0.5,
	}

	require.NoError(t, ui.DisplayReport(context.Background(), report))

	output := buf.String()
	assert.Contains(t, output, "Grading Report")
	assert.Contains(t, output, "leap-year: 1/2 passed")
	assert.Contains(t, output, "02 fail: output mismatch")
	assert.Contains(t, output, "+NO")
	assert.Contains(t, output, "Score: 50.00%")
}

func TestTUI_DisplayTasks_PrintsStatically(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	summaries := []m.TaskSummary{
		{Task: m.Task{Slug: "taxi-fare", Name: "Taxi Fare"}, Public: 4, Hidden: 1},
		{Task: m.Task{Slug: "leap-year", Name: "Leap Year", Timeout: 5 * time.Second}, Public: 5, Hidden: 0},
	}

	require.NoError(t, ui.DisplayTasks(context.Background(), summaries))

	output := buf.String()
	assert.Contains(t, output, "taxi-fare (Taxi Fare): 4 public, 1 hidden")
	assert.Contains(t, output, "leap-year (Leap Year): 5 public, 0 hidden, 5s timeout")
	assert.Contains(t, output, "2 task(s), 9 public and 1 hidden vector(s)")
}

func TestTUI_DisplayHistory_PrintsStatically(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	runs := []m.RunSummary{
		{
			ID: "run-1", Suite: m.SuitePublic,
			Finished: time.Date(2025, 11, 3, 9, 5, 0, 0, time.UTC),
			Tasks:    3, Vectors: 10, Passed: 10, Score: 1.0,
		},
	}

	require.NoError(t, ui.DisplayHistory(context.Background(), runs))

	output := buf.String()
	assert.Contains(t, output, "Grading History")
	assert.Contains(t, output, "3 task(s)")
	assert.Contains(t, output, "10/10 passed")
	assert.Contains(t, output, "100.00%")
}

func TestTUI_ProgressOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)
	ctx := context.Background()

	ui.DisplayConcurrencyInfo(ctx, 2, 0, 1)
	ui.DisplayTaskStartInfo(ctx, m.Task{Slug: "reverse-digits"})
	ui.DisplayTaskResultInfo(ctx, m.TaskResult{
		Task:    "reverse-digits",
		BuildOK: true,
		Vectors: []m.VectorResult{{Vector: "01", Verdict: m.VerdictPass}},
	})

	output := buf.String()
	assert.Contains(t, output, "Grading with 2 worker(s)")
	assert.Contains(t, output, "Grading reverse-digits")
	assert.Contains(t, output, "reverse-digits 1/1 passed")
}

func TestTUI_CancelledContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	require.ErrorIs(t, ui.DisplayReport(ctx, m.Report{}), context.Canceled)
	assert.Empty(t, buf.String())
}
