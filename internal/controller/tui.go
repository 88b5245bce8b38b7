package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "drill.dev/pkg/drill/internal/model"
)

const (
	passGlyph = "✓"
	failGlyph = "✗"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	timeoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed. The pager quits on its own key
// bindings, so there is nothing to wait for here.
func (p *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayConcurrencyInfo shows concurrency settings.
func (p *TUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if shardCount > 1 {
		fmt.Fprintf(p.output, "%s\n", faintStyle.Render(
			fmt.Sprintf("Grading with %d worker(s) (shard %d/%d)", threads, shardIndex, shardCount)))

		return
	}

	fmt.Fprintf(p.output, "%s\n", faintStyle.Render(fmt.Sprintf("Grading with %d worker(s)", threads)))
}

// DisplayTaskStartInfo shows info about a task starting to grade.
func (p *TUI) DisplayTaskStartInfo(ctx context.Context, task m.Task) {
	if err := ctx.Err(); err != nil {
		return
	}

	fmt.Fprintf(p.output, "%s\n", faintStyle.Render("Grading "+task.Slug))
}

// DisplayTaskResultInfo shows the per-task outcome as soon as it is graded.
func (p *TUI) DisplayTaskResultInfo(ctx context.Context, result m.TaskResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !result.BuildOK {
		fmt.Fprintf(p.output, "%s %s build failed\n", failStyle.Render(failGlyph), result.Task)
		return
	}

	tally := tallyVectors(result)

	glyph := passStyle.Render(passGlyph)
	if !tally.Clean() {
		glyph = failStyle.Render(failGlyph)
	}

	fmt.Fprintf(p.output, "%s %s %d/%d passed\n", glyph, result.Task, tally.PassedTotal(), tally.Total())
}

// DisplayTasks shows every discovered task with its vector counts.
func (p *TUI) DisplayTasks(ctx context.Context, summaries []m.TaskSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.page(newPagerModel("Tasks", buildTaskLines(summaries), buildTaskSummary(summaries)))
}

// DisplayReport shows the graded report with per-vector failure details.
func (p *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.page(newPagerModel("Grading Report", buildReportLines(report), buildReportSummary(report)))
}

// DisplayHistory shows recent runs, newest first.
func (p *TUI) DisplayHistory(ctx context.Context, runs []m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.page(newPagerModel("Grading History", buildHistoryLines(runs), nil))
}

// page prints the model directly when it fits on screen, otherwise it hands
// the model to a Bubble Tea program so the user can scroll through it.
func (p *TUI) page(model pagerModel) error {
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func buildTaskLines(summaries []m.TaskSummary) []string {
	lines := make([]string, 0, len(summaries))

	for _, summary := range summaries {
		name := summary.Task.Slug
		if summary.Task.Name != "" {
			name = fmt.Sprintf("%s (%s)", summary.Task.Slug, summary.Task.Name)
		}

		line := fmt.Sprintf("%s: %d public, %d hidden", name, summary.Public, summary.Hidden)
		if summary.Task.Timeout != 0 {
			line += fmt.Sprintf(", %s timeout", summary.Task.Timeout)
		}

		lines = append(lines, line)
	}

	return lines
}

func buildTaskSummary(summaries []m.TaskSummary) []string {
	totalPublic := 0
	totalHidden := 0

	for _, summary := range summaries {
		totalPublic += summary.Public
		totalHidden += summary.Hidden
	}

	return []string{fmt.Sprintf("%d task(s), %d public and %d hidden vector(s)",
		len(summaries), totalPublic, totalHidden)}
}

func buildReportLines(report m.Report) []string {
	lines := make([]string, 0, len(report.Tasks))

	for _, task := range report.Tasks {
		if !task.BuildOK {
			lines = append(lines, fmt.Sprintf("%s %s: build failed", failStyle.Render(failGlyph), task.Task))
			lines = appendIndented(lines, task.BuildOutput)

			continue
		}

		tally := tallyVectors(task)

		glyph := passStyle.Render(passGlyph)
		if !tally.Clean() {
			glyph = failStyle.Render(failGlyph)
		}

		lines = append(lines, fmt.Sprintf("%s %s: %d/%d passed", glyph, task.Task, tally.PassedTotal(), tally.Total()))

		for _, vector := range task.Vectors {
			if vector.Verdict.Passing() {
				continue
			}

			line := fmt.Sprintf("  %s %s", vector.Vector, verdictStyle(vector.Verdict).Render(string(vector.Verdict)))
			if vector.Detail != "" {
				line += ": " + vector.Detail
			}

			lines = append(lines, line)

			if vector.Diff != "" {
				lines = appendIndented(lines, vector.Diff)
			}
		}
	}

	return lines
}

func buildReportSummary(report m.Report) []string {
	tally := report.Tally

	counts := fmt.Sprintf("Passed %d/%d | Failed %d | Timeout %d | Errors %d",
		tally.PassedTotal(), tally.Total(), tally.Failed, tally.TimedOut, tally.Errored)

	if report.Shard != "" {
		counts += " | Shard " + report.Shard
	}

	return []string{counts, titleStyle.Render(fmt.Sprintf("Score: %.2f%%", report.Score*100))}
}

func buildHistoryLines(runs []m.RunSummary) []string {
	lines := make([]string, 0, len(runs))

	for _, run := range runs {
		passed := run.Passed + run.NoGolden
		failed := run.Failed + run.TimedOut + run.Errored

		glyph := passStyle.Render(passGlyph)
		if failed > 0 {
			glyph = failStyle.Render(failGlyph)
		}

		lines = append(lines, fmt.Sprintf("%s %s  %s  %d task(s)  %d/%d passed  %.2f%%",
			glyph,
			run.Finished.Local().Format("2006-01-02 15:04"),
			run.Suite,
			run.Tasks,
			passed,
			run.Vectors,
			run.Score*100))
	}

	return lines
}

// appendIndented splits a block of text and appends each line indented and
// faint, keeping one display line per pager line.
func appendIndented(lines []string, block string) []string {
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		lines = append(lines, faintStyle.Render("    "+line))
	}

	return lines
}

func verdictStyle(verdict m.Verdict) lipgloss.Style {
	switch verdict {
	case m.VerdictFail, m.VerdictError:
		return failStyle
	case m.VerdictTimeout:
		return timeoutStyle
	case m.VerdictPass, m.VerdictNoGolden:
		return passStyle
	default:
		return faintStyle
	}
}

// keyMap lists the pager bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

var pagerKeys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// pagerModel is the Bubble Tea model behind every TUI display. It scrolls a
// flat list of pre-rendered lines with a fixed summary block below.
type pagerModel struct {
	title    string
	lines    []string
	summary  []string
	keys     keyMap
	height   int
	width    int
	offset   int
	quitting bool
}

func newPagerModel(title string, lines []string, summary []string) pagerModel {
	return pagerModel{
		title:   title,
		lines:   lines,
		summary: summary,
		keys:    pagerKeys,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pm.keys.Quit):
		pm.quitting = true
		return pm, tea.Quit

	case key.Matches(msg, pm.keys.Down):
		pm.offset = clampOffset(pm.offset+1, pm.maxOffset())

	case key.Matches(msg, pm.keys.Up):
		pm.offset = clampOffset(pm.offset-1, pm.maxOffset())

	case key.Matches(msg, pm.keys.PageDown):
		pm.offset = clampOffset(pm.offset+pm.itemsPerPage(), pm.maxOffset())

	case key.Matches(msg, pm.keys.PageUp):
		pm.offset = clampOffset(pm.offset-pm.itemsPerPage(), pm.maxOffset())

	case key.Matches(msg, pm.keys.Top):
		pm.offset = 0

	case key.Matches(msg, pm.keys.Bottom):
		pm.offset = pm.maxOffset()
	}

	return pm, nil
}

func clampOffset(offset, maxOffset int) int {
	if offset > maxOffset {
		offset = maxOffset
	}

	if offset < 0 {
		return 0
	}

	return offset
}

// itemsPerPage calculates how many content lines fit on screen. The reserved
// lines cover the title block, the summary block and the pagination footer.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	reserved := 12

	available := pm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (pm pagerModel) maxOffset() int {
	maxOff := len(pm.lines) - pm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the list is too large to fit on screen.
func (pm pagerModel) needsPagination() bool {
	if len(pm.lines) == 0 {
		return false
	}

	return len(pm.lines) > pm.itemsPerPage() && pm.height > 0
}

func (pm pagerModel) applyPagination(needsPagination bool) []string {
	if !needsPagination {
		return pm.lines
	}

	start := pm.offset
	if start >= len(pm.lines) {
		start = len(pm.lines) - 1
		if start < 0 {
			start = 0
		}
	}

	end := start + pm.itemsPerPage()
	if end > len(pm.lines) {
		end = len(pm.lines)
	}

	return pm.lines[start:end]
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")

	if len(pm.lines) == 0 {
		b.WriteString("Nothing to show\n")
		return b.String()
	}

	needsPagination := pm.needsPagination()

	for _, line := range pm.applyPagination(needsPagination) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(pm.summary) > 0 {
		b.WriteString("\n")

		for _, line := range pm.summary {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	pm.writeFooter(&b, needsPagination)

	return b.String()
}

func (pm pagerModel) writeFooter(b *strings.Builder, needsPagination bool) {
	if !needsPagination {
		return
	}

	start := pm.offset + 1

	end := pm.offset + pm.itemsPerPage()
	if end > len(pm.lines) {
		end = len(pm.lines)
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("Lines %d-%d of %d", start, end, len(pm.lines))))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(pm.helpLine()))
	b.WriteString("\n")
}

func (pm pagerModel) helpLine() string {
	bindings := []key.Binding{pm.keys.Up, pm.keys.Down, pm.keys.Top, pm.keys.Bottom, pm.keys.Quit}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		parts = append(parts, binding.Help().Key+": "+binding.Help().Desc)
	}

	return strings.Join(parts, " | ")
}
