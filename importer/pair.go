package importer

import (
	"fmt"
	"io"
	"jobaudit/joblog"
	"log/slog"
	"strings"
	"time"
)

// TimeParseError is returned when a timestamp field does not match the
// configured time format. It aborts pairing for the whole source.
type TimeParseError struct {
	Source string
	Row    int
	Value  string
	Format string
	Err    error
}

func (e *TimeParseError) Error() string {
	location := fmt.Sprintf("row %d", e.Row)
	if e.Source != "" {
		location = fmt.Sprintf("%s row %d", e.Source, e.Row)
	}
	return fmt.Sprintf("parse timestamp %q at %s with format %q: %v", e.Value, location, e.Format, e.Err)
}

func (e *TimeParseError) Unwrap() error {
	return e.Err
}

type PairOptions struct {
	TimeFormat string
	// Source names the input in errors and log output.
	Source string
	// Diagnostics receives one "Skipping malformed row" line per row with
	// the wrong field count. Nil discards them.
	Diagnostics io.Writer
	Logger      *slog.Logger
}

type PairResult struct {
	Jobs          []joblog.Job
	RowsRead      int
	RowsMalformed int
	// RowsIgnored counts well-formed rows whose status is neither START nor END.
	RowsIgnored   int
	UnmatchedEnds int
	Restarts      int
	Unterminated  int
}

// Pair matches START and END rows by pid and returns the completed jobs in
// the order their END rows appear. A later START for an open pid replaces
// the earlier start time. END rows without an open START and STARTs that
// never end produce no job.
func Pair(rows []joblog.Row, opts PairOptions) (PairResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	format := opts.TimeFormat
	if format == "" {
		format = joblog.DefaultTimeFormat
	}

	result := PairResult{Jobs: make([]joblog.Job, 0, len(rows)/2)}
	open := make(map[string]time.Time)

	for _, row := range rows {
		result.RowsRead++
		if len(row.Fields) != joblog.FieldCount {
			result.RowsMalformed++
			if opts.Diagnostics != nil {
				fmt.Fprintf(opts.Diagnostics, "Skipping malformed row: %q\n", row.Fields)
			}
			logger.Debug("skipping malformed row",
				"source", opts.Source,
				"row", row.Number,
				"fields", len(row.Fields),
			)
			continue
		}

		rawTimestamp := strings.TrimSpace(row.Fields[0])
		description := strings.TrimSpace(row.Fields[1])
		status := joblog.Status(strings.TrimSpace(row.Fields[2]))
		pid := strings.TrimSpace(row.Fields[3])

		timestamp, err := parseTimestamp(rawTimestamp, format)
		if err != nil {
			return PairResult{}, &TimeParseError{
				Source: opts.Source,
				Row:    row.Number,
				Value:  rawTimestamp,
				Format: format,
				Err:    err,
			}
		}

		switch status {
		case joblog.StatusStart:
			if _, exists := open[pid]; exists {
				result.Restarts++
				logger.Debug("start replaces open job", "source", opts.Source, "row", row.Number, "pid", pid)
			}
			open[pid] = timestamp
		case joblog.StatusEnd:
			start, ok := open[pid]
			if !ok {
				result.UnmatchedEnds++
				continue
			}
			delete(open, pid)

			result.Jobs = append(result.Jobs, joblog.Job{
				Description: description,
				PID:         pid,
				Start:       start,
				End:         timestamp,
				Duration:    timestamp.Sub(start),
				SourceFile:  opts.Source,
			})
		default:
			result.RowsIgnored++
		}
	}

	result.Unterminated = len(open)
	if result.Unterminated > 0 {
		logger.Debug("discarding unterminated jobs", "source", opts.Source, "count", result.Unterminated)
	}

	return result, nil
}
