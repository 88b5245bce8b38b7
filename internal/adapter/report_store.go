package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	m "drill.dev/pkg/drill/internal/model"
)

const (
	reportFileName = "report.yaml"
	shardFileFmt   = "shard_%d.yaml"
	shardFileGlob  = "shard_*.yaml"
)

// ReportStore persists grading reports between runs.
type ReportStore interface {
	// SaveReport writes the report to <dir>/report.yaml.
	SaveReport(dir m.Path, report m.Report) error

	// SaveShard writes the report of one shard to <dir>/shard_<index>.yaml.
	SaveShard(dir m.Path, index int, report m.Report) error

	// LoadReport reads <dir>/report.yaml back.
	LoadReport(dir m.Path) (m.Report, error)

	// LoadShards reads every shard_*.yaml under dir, ordered by file name.
	LoadShards(dir m.Path) ([]m.Report, error)
}

// LocalReportStore stores reports as YAML files on the local filesystem.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore instance ready to be
// wired into the workflow.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes the report to <dir>/report.yaml.
func (s *LocalReportStore) SaveReport(dir m.Path, report m.Report) error {
	return s.write(filepath.Join(string(dir), reportFileName), report)
}

// SaveShard writes the report of one shard to <dir>/shard_<index>.yaml.
func (s *LocalReportStore) SaveShard(dir m.Path, index int, report m.Report) error {
	return s.write(filepath.Join(string(dir), fmt.Sprintf(shardFileFmt, index)), report)
}

func (s *LocalReportStore) write(path string, report m.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads <dir>/report.yaml back.
func (s *LocalReportStore) LoadReport(dir m.Path) (m.Report, error) {
	return s.read(filepath.Join(string(dir), reportFileName))
}

// LoadShards reads every shard_*.yaml under dir, ordered by file name.
func (s *LocalReportStore) LoadShards(dir m.Path) ([]m.Report, error) {
	paths, err := filepath.Glob(filepath.Join(string(dir), shardFileGlob))
	if err != nil {
		return nil, fmt.Errorf("list shard reports in %s: %w", dir, err)
	}

	sort.Strings(paths)

	var reports []m.Report

	for _, path := range paths {
		report, err := s.read(path)
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	return reports, nil
}

func (s *LocalReportStore) read(path string) (m.Report, error) {
	content, err := os.ReadFile(path) // #nosec G304 - path is derived from the reports directory
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(content, &report); err != nil {
		return m.Report{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}
