package model

import (
	"fmt"
	"strings"
	"time"
)

// Path represents a file system path.
type Path string

// Suite selects which golden vectors a grading run covers.
type Suite string

const (
	// SuitePublic grades only the vectors shipped inside the task directory.
	SuitePublic Suite = "public"

	// SuiteHidden grades only the vectors under the hidden root.
	SuiteHidden Suite = "hidden"

	// SuiteAll grades public and hidden vectors together.
	SuiteAll Suite = "all"
)

// ParseSuite maps a config/CLI value onto a Suite.
func ParseSuite(value string) (Suite, error) {
	switch Suite(strings.ToLower(strings.TrimSpace(value))) {
	case SuitePublic:
		return SuitePublic, nil
	case SuiteHidden:
		return SuiteHidden, nil
	case SuiteAll, Suite(""):
		return SuiteAll, nil
	}

	return SuiteAll, fmt.Errorf("unknown suite %q (want public, hidden or all)", value)
}

// Task describes one gradable exercise directory.
type Task struct {
	Slug    string
	Name    string
	Dir     Path
	Timeout time.Duration // per-vector run timeout; zero means the configured default
}

// TaskSummary pairs a task with its vector counts for listings.
type TaskSummary struct {
	Task   Task
	Public int
	Hidden int
}
