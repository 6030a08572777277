package output

import (
	"jobaudit/joblog"
	"jobaudit/storage"
)

// SQLiteWriter replaces the jobs table of the database at path.
type SQLiteWriter struct{}

func (w *SQLiteWriter) Write(path string, jobs []joblog.Job) error {
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.ReplaceJobs(jobs)
	return err
}
