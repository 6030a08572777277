package report

import (
	"fmt"
	"jobaudit/internal/classify"
	"jobaudit/internal/timeutil"
	"jobaudit/joblog"
	"time"
)

type Level string

const (
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
)

// Thresholds bound the warning and error tiers. Error is expected to be at
// least Warning; this is not checked.
type Thresholds struct {
	Warning time.Duration
	Error   time.Duration
}

// DefaultThresholds returns the 5 and 10 minute tiers.
func DefaultThresholds() Thresholds {
	return Thresholds{Warning: 5 * time.Minute, Error: 10 * time.Minute}
}

// Line is one flagged job.
type Line struct {
	Level Level
	Job   joblog.Job
}

// Message is the job part of the report line, without the level prefix.
func (l Line) Message() string {
	return fmt.Sprintf("%s (PID %s) from %s to %s - Duration: %s",
		l.Job.Description,
		l.Job.PID,
		timeutil.FormatClock(l.Job.Start),
		timeutil.FormatClock(l.Job.End),
		timeutil.FormatDuration(l.Job.Duration),
	)
}

func (l Line) String() string {
	return fmt.Sprintf("%s: %s", l.Level, l.Message())
}

// Classify returns one line per job whose duration exceeds a threshold, in
// job order. Jobs at or below the warning threshold, including negative
// durations, produce nothing.
func Classify(jobs []joblog.Job, thresholds Thresholds) []Line {
	lines := make([]Line, 0)
	for _, job := range jobs {
		if line, ok := classifyJob(job, thresholds); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func classifyJob(job joblog.Job, thresholds Thresholds) (Line, bool) {
	switch classify.Duration(job.Duration, thresholds.Warning, thresholds.Error) {
	case classify.TierError:
		return Line{Level: LevelError, Job: job}, true
	case classify.TierWarning:
		return Line{Level: LevelWarning, Job: job}, true
	default:
		return Line{}, false
	}
}

// Counts tallies lines per level.
func Counts(lines []Line) (warnings, errors int) {
	for _, line := range lines {
		switch line.Level {
		case LevelWarning:
			warnings++
		case LevelError:
			errors++
		}
	}
	return warnings, errors
}
