package adapter

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"drill.dev/pkg/drill/internal/adapter/migrations"
	m "drill.dev/pkg/drill/internal/model"
)

// defaultRunLimit caps RecentRuns when the caller passes no limit.
const defaultRunLimit = 10

// HistoryStore records finished grading runs so past scores can be compared.
type HistoryStore interface {
	// RecordRun stores the tally of a finished report. Recording the same
	// report ID twice updates the existing row.
	RecordRun(ctx context.Context, report m.Report) error

	// RecentRuns returns up to limit runs, newest first.
	RecentRuns(ctx context.Context, limit int) ([]m.RunSummary, error)

	// Close releases the underlying database handle.
	Close() error
}

// SQLiteHistoryStore keeps grading history in a local SQLite database. WAL
// journaling keeps concurrent shard runs from tripping over each other.
type SQLiteHistoryStore struct {
	db   *sql.DB
	path string
}

var _ HistoryStore = (*SQLiteHistoryStore)(nil)

// NewSQLiteHistoryStore opens (or creates) the history database at path and
// applies any pending schema migrations.
func NewSQLiteHistoryStore(path m.Path) (*SQLiteHistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", string(path)+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	store := &SQLiteHistoryStore{db: db, path: string(path)}

	if err := store.migrate(migrations.FS); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteHistoryStore) Path() string {
	return s.path
}

// migrate applies every pending *.up.sql migration in version order.
func (s *SQLiteHistoryStore) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	var currentVersion int

	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("read migrations directory: %w", err)
	}

	var upFiles []string

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}

	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract the version number (e.g. "001_runs.up.sql" -> 1).
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("execute migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
	}

	return nil
}

// RecordRun stores the tally of a finished report.
func (s *SQLiteHistoryStore) RecordRun(ctx context.Context, report m.Report) error {
	tally := report.Tally

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
			(id, suite, started_at, finished_at, tasks, vectors, passed, no_golden, failed, timed_out, errored, score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			suite = excluded.suite,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			tasks = excluded.tasks,
			vectors = excluded.vectors,
			passed = excluded.passed,
			no_golden = excluded.no_golden,
			failed = excluded.failed,
			timed_out = excluded.timed_out,
			errored = excluded.errored,
			score = excluded.score
	`, report.ID, string(report.Suite),
		report.Started.UTC().Format(time.RFC3339Nano),
		report.Finished.UTC().Format(time.RFC3339Nano),
		len(report.Tasks), tally.Total(), tally.Passed, tally.NoGolden,
		tally.Failed, tally.TimedOut, tally.Errored, report.Score)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *SQLiteHistoryStore) RecentRuns(ctx context.Context, limit int) ([]m.RunSummary, error) {
	if limit <= 0 {
		limit = defaultRunLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, suite, started_at, finished_at, tasks, vectors, passed, no_golden, failed, timed_out, errored, score
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var runs []m.RunSummary

	for rows.Next() {
		var (
			run      m.RunSummary
			suite    string
			started  string
			finished string
		)

		if err := rows.Scan(&run.ID, &suite, &started, &finished, &run.Tasks, &run.Vectors,
			&run.Passed, &run.NoGolden, &run.Failed, &run.TimedOut, &run.Errored, &run.Score); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}

		run.Suite = m.Suite(suite)

		if run.Started, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse run start time: %w", err)
		}

		if run.Finished, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse run finish time: %w", err)
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}
