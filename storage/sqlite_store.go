package storage

import (
	"database/sql"
	"fmt"
	"jobaudit/joblog"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore holds exported job records in a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	pid TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	duration_ns INTEGER NOT NULL,
	source_file TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

const insertJobStmt = `
INSERT INTO jobs (
	description,
	pid,
	start_time,
	end_time,
	duration_ns,
	source_file
) VALUES (?, ?, ?, ?, ?, ?);`

func (s *SQLiteStore) InsertJobs(jobs []joblog.Job) (int, error) {
	return s.writeJobs(jobs, false)
}

// ReplaceJobs deletes all stored jobs and inserts jobs in one transaction.
func (s *SQLiteStore) ReplaceJobs(jobs []joblog.Job) (int, error) {
	return s.writeJobs(jobs, true)
}

func (s *SQLiteStore) writeJobs(jobs []joblog.Job, replace bool) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	if replace {
		if _, err := tx.Exec(`DELETE FROM jobs;`); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("delete jobs: %w", err)
		}
	}

	stmt, err := tx.Prepare(insertJobStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, job := range jobs {
		if _, err := stmt.Exec(
			job.Description,
			job.PID,
			job.Start.Format(time.RFC3339Nano),
			job.End.Format(time.RFC3339Nano),
			int64(job.Duration),
			job.SourceFile,
		); err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert job %s: %w", job.PID, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ListJobs returns the stored jobs in insertion order.
func (s *SQLiteStore) ListJobs() ([]joblog.Job, error) {
	const query = `
SELECT
	description,
	pid,
	start_time,
	end_time,
	duration_ns,
	source_file
FROM jobs
ORDER BY id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]joblog.Job, 0, 256)
	for rows.Next() {
		var (
			startRaw   string
			endRaw     string
			durationNS int64
			job        joblog.Job
		)

		if err := rows.Scan(
			&job.Description,
			&job.PID,
			&startRaw,
			&endRaw,
			&durationNS,
			&job.SourceFile,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}

		job.Start, err = time.Parse(time.RFC3339Nano, startRaw)
		if err != nil {
			return nil, fmt.Errorf("parse start time %q: %w", startRaw, err)
		}
		job.End, err = time.Parse(time.RFC3339Nano, endRaw)
		if err != nil {
			return nil, fmt.Errorf("parse end time %q: %w", endRaw, err)
		}
		job.Duration = time.Duration(durationNS)

		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, nil
}

func (s *SQLiteStore) DeleteAllJobs() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM jobs;`)
	if err != nil {
		return 0, fmt.Errorf("delete jobs: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read deleted row count: %w", err)
	}
	return rows, nil
}
