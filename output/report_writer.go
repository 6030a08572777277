package output

import (
	"encoding/json"
	"fmt"
	"io"
	"jobaudit/internal/timeutil"
	"jobaudit/report"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))            // yellow
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
)

// ReportWriter prints classified report lines.
type ReportWriter interface {
	WriteLines(lines []report.Line) error
}

func ReportWriterForFormat(format string, w io.Writer, color bool) (ReportWriter, error) {
	switch normalizeFormat(format) {
	case "", "text":
		return &TextReportWriter{w: w, color: color}, nil
	case "json":
		return &JSONReportWriter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// TextReportWriter prints one "<LEVEL>: ..." line per flagged job. With
// color enabled only the level tag is styled.
type TextReportWriter struct {
	w     io.Writer
	color bool
}

func NewTextReportWriter(w io.Writer, color bool) *TextReportWriter {
	return &TextReportWriter{w: w, color: color}
}

func (r *TextReportWriter) WriteLines(lines []report.Line) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(r.w, "%s: %s\n", r.levelTag(line.Level), line.Message()); err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
	}
	return nil
}

func (r *TextReportWriter) levelTag(level report.Level) string {
	if !r.color {
		return string(level)
	}
	switch level {
	case report.LevelError:
		return styleError.Render(string(level))
	case report.LevelWarning:
		return styleWarning.Render(string(level))
	default:
		return string(level)
	}
}

type jsonLine struct {
	Level       string  `json:"level"`
	Description string  `json:"description"`
	PID         string  `json:"pid"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Duration    string  `json:"duration"`
	DurationSec float64 `json:"duration_seconds"`
	SourceFile  string  `json:"source_file,omitempty"`
}

// JSONReportWriter prints each report line as one JSON object.
type JSONReportWriter struct {
	enc *json.Encoder
}

func (r *JSONReportWriter) WriteLines(lines []report.Line) error {
	for _, line := range lines {
		if err := r.enc.Encode(jsonLine{
			Level:       string(line.Level),
			Description: line.Job.Description,
			PID:         line.Job.PID,
			Start:       timeutil.FormatClock(line.Job.Start),
			End:         timeutil.FormatClock(line.Job.End),
			Duration:    timeutil.FormatDuration(line.Job.Duration),
			DurationSec: line.Job.Duration.Seconds(),
			SourceFile:  line.Job.SourceFile,
		}); err != nil {
			return fmt.Errorf("encode report line: %w", err)
		}
	}
	return nil
}
