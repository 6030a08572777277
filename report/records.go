package report

import (
	"errors"
	"fmt"
	"jobaudit/importer"
	"jobaudit/internal/timeutil"
	"jobaudit/joblog"
	"log/slog"
	"strings"
	"time"
)

// Column names of a job record. Lookups ignore case, spaces, '_' and '-'.
const (
	ColumnDescription = "Description"
	ColumnPID         = "PID"
	ColumnStart       = "Start"
	ColumnEnd         = "End"
	ColumnDuration    = "Duration"
	ColumnSourceFile  = "SourceFile"
)

// MissingFieldError reports a job record without a required column.
type MissingFieldError struct {
	Field string
	Row   int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("job record at row %d has no %s field", e.Row, strings.ToLower(e.Field))
}

// ClassifyRecords classifies loosely typed job records such as the rows of a
// job export. A record without a duration column fails the whole call with a
// *MissingFieldError. A record whose duration is present but not a valid
// duration is skipped without output.
func ClassifyRecords(records []importer.Record, thresholds Thresholds) ([]Line, error) {
	lines := make([]Line, 0)
	for _, record := range records {
		job, err := JobFromRecord(record)
		if err != nil {
			if errors.Is(err, timeutil.ErrInvalidDuration) {
				slog.Debug("skipping job record with invalid duration", "row", record.RowNumber)
				continue
			}
			return nil, err
		}
		if line, ok := classifyJob(job, thresholds); ok {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// JobFromRecord decodes a job record. Start and end are optional clock
// values; the duration column is required.
func JobFromRecord(record importer.Record) (joblog.Job, error) {
	rawDuration, ok := record.Lookup(ColumnDuration)
	if !ok {
		return joblog.Job{}, &MissingFieldError{Field: ColumnDuration, Row: record.RowNumber}
	}

	duration, err := timeutil.ParseDuration(rawDuration)
	if err != nil {
		return joblog.Job{}, fmt.Errorf("job record at row %d: %w", record.RowNumber, err)
	}

	return joblog.Job{
		Description: record.Get(ColumnDescription),
		PID:         record.Get(ColumnPID),
		Start:       parseClock(record.Get(ColumnStart)),
		End:         parseClock(record.Get(ColumnEnd)),
		Duration:    duration,
		SourceFile:  record.Get(ColumnSourceFile),
	}, nil
}

func parseClock(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	// Fractional seconds are accepted even though the layout omits them.
	parsed, err := time.Parse("15:04:05", value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
