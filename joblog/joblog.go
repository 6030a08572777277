package joblog

import "time"

// Status is the lifecycle marker carried by a log row.
type Status string

const (
	StatusStart Status = "START"
	StatusEnd   Status = "END"
)

// FieldCount is the number of fields in a well-formed log row:
// timestamp, description, status, pid.
const FieldCount = 4

// Row is one raw log line as read from the source, before pairing.
type Row struct {
	Number int
	Fields []string
}

// Job is a completed job built from one matched START/END pair.
type Job struct {
	Description string
	PID         string
	Start       time.Time
	End         time.Time
	// Duration is End minus Start and is negative when the END
	// time-of-day precedes the START time-of-day.
	Duration   time.Duration
	SourceFile string
}

// DefaultTimeFormat is the strftime-style layout of log timestamps when none
// is configured.
const DefaultTimeFormat = "%H:%M:%S"
