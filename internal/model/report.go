package model

import "time"

// Verdict classifies the outcome of grading a single vector.
type Verdict string

const (
	// VerdictPass means normalized output matched the golden file.
	VerdictPass Verdict = "pass"
	// VerdictFail means normalized output differed from the golden file.
	VerdictFail Verdict = "fail"
	// VerdictNoGolden means a smoke vector ran and exited cleanly; it counts
	// as passed without an output comparison.
	VerdictNoGolden Verdict = "no-golden"
	// VerdictTimeout means the program exceeded the per-vector time limit.
	VerdictTimeout Verdict = "timeout"
	// VerdictError means the program exited non-zero or could not be run.
	VerdictError Verdict = "error"
)

// Passing reports whether the verdict counts towards the passed tally.
func (v Verdict) Passing() bool {
	return v == VerdictPass || v == VerdictNoGolden
}

// Execution captures one run of a task binary against a vector's input.
type Execution struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Duration time.Duration
}

// VectorResult is the graded outcome of a single vector.
type VectorResult struct {
	Task     string        `yaml:"task"`
	Vector   string        `yaml:"vector"`
	Hidden   bool          `yaml:"hidden"`
	Verdict  Verdict       `yaml:"verdict"`
	Detail   string        `yaml:"detail,omitempty"`
	Diff     string        `yaml:"diff,omitempty"`
	Duration time.Duration `yaml:"duration"`
}

// TaskResult groups the grading outcome of one task.
type TaskResult struct {
	Task        string         `yaml:"task"`
	BuildOK     bool           `yaml:"build_ok"`
	BuildOutput string         `yaml:"build_output,omitempty"`
	Vectors     []VectorResult `yaml:"vectors,omitempty"`
}

// Tally counts vector verdicts across a run.
type Tally struct {
	Passed   int `yaml:"passed"`
	NoGolden int `yaml:"no_golden"`
	Failed   int `yaml:"failed"`
	TimedOut int `yaml:"timed_out"`
	Errored  int `yaml:"errored"`
}

// Add counts one verdict.
func (t *Tally) Add(v Verdict) {
	switch v {
	case VerdictPass:
		t.Passed++
	case VerdictNoGolden:
		t.NoGolden++
	case VerdictFail:
		t.Failed++
	case VerdictTimeout:
		t.TimedOut++
	case VerdictError:
		t.Errored++
	}
}

// Total returns the number of graded vectors.
func (t Tally) Total() int {
	return t.Passed + t.NoGolden + t.Failed + t.TimedOut + t.Errored
}

// PassedTotal returns the number of vectors that count as passed.
func (t Tally) PassedTotal() int {
	return t.Passed + t.NoGolden
}

// Clean reports whether every graded vector passed.
func (t Tally) Clean() bool {
	return t.Failed == 0 && t.TimedOut == 0 && t.Errored == 0
}

// Report is the persisted result of one grading run.
type Report struct {
	ID       string       `yaml:"id"`
	Suite    Suite        `yaml:"suite"`
	Started  time.Time    `yaml:"started"`
	Finished time.Time    `yaml:"finished"`
	Shard    string       `yaml:"shard,omitempty"`
	Tasks    []TaskResult `yaml:"tasks"`
	Tally    Tally        `yaml:"tally"`
	Score    float64      `yaml:"score"`
}

// Clean reports whether the run had no failed vectors and no build failures.
func (r Report) Clean() bool {
	if !r.Tally.Clean() {
		return false
	}

	for _, task := range r.Tasks {
		if !task.BuildOK {
			return false
		}
	}

	return true
}

// RunSummary is a single row of grading history as recorded by the history
// store. It carries the tally of a finished run without the per-vector detail.
type RunSummary struct {
	ID       string
	Suite    Suite
	Started  time.Time
	Finished time.Time
	Tasks    int
	Vectors  int
	Passed   int
	NoGolden int
	Failed   int
	TimedOut int
	Errored  int
	Score    float64
}
