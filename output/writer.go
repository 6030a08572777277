package output

import (
	"fmt"
	"jobaudit/internal/timeutil"
	"jobaudit/joblog"
	"path/filepath"
	"strings"
)

// Writer exports completed jobs to a file.
type Writer interface {
	Write(path string, jobs []joblog.Job) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	case "sqlite", "db":
		return &SQLiteWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat derives an export format from the output file extension,
// falling back to csv.
func DetectFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm", "xls":
		return "excel"
	case "db", "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "csv"
	}
}

var jobHeaders = []string{"Description", "PID", "Start", "End", "Duration", "SourceFile"}

func jobValues(job joblog.Job) []string {
	return []string{
		job.Description,
		job.PID,
		timeutil.FormatClock(job.Start),
		timeutil.FormatClock(job.End),
		timeutil.FormatDuration(job.Duration),
		job.SourceFile,
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
