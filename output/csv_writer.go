package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"jobaudit/joblog"
	"os"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, jobs []joblog.Job) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close csv output %s: %w", path, closeErr)
		}
	}()

	return writeJobsCSV(file, jobs)
}

func writeJobsCSV(out io.Writer, jobs []joblog.Job) error {
	writer := csv.NewWriter(out)
	rows := make([][]string, 0, len(jobs)+1)
	rows = append(rows, jobHeaders)
	for _, job := range jobs {
		rows = append(rows, jobValues(job))
	}

	// WriteAll flushes.
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv output: %w", err)
	}
	return nil
}
