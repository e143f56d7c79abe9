// Package store handles SQLite persistence of stats runs.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Run is one archived stats run.
type Run struct {
	ID         int64
	CreatedAt  time.Time
	Source     string
	Records    int
	FirstDate  string
	LastDate   string
	ReportJSON string
}

// Store wraps SQLite access for the run archive.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			source TEXT NOT NULL,
			records INTEGER NOT NULL,
			first_date TEXT NOT NULL,
			last_date TEXT NOT NULL,
			report_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun archives one stats run and returns its id.
func (s *Store) InsertRun(ctx context.Context, run Run) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (created_at, source, records, first_date, last_date, report_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.Source,
		run.Records,
		run.FirstDate,
		run.LastDate,
		run.ReportJSON,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns returns archived runs, newest first, without report bodies.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, created_at, source, records, first_date, last_date
		FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &createdAt, &run.Source, &run.Records, &run.FirstDate, &run.LastDate); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			run.CreatedAt = parsed
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one archived run including its report JSON.
func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	var run Run
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, source, records, first_date, last_date, report_json
		 FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &createdAt, &run.Source, &run.Records, &run.FirstDate, &run.LastDate, &run.ReportJSON)
	if err != nil {
		return Run{}, err
	}
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		run.CreatedAt = parsed
	}
	return run, nil
}
