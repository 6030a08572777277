package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"jobaudit/importer"
	"jobaudit/joblog"
	"jobaudit/report"
	"jobaudit/storage"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleJobs(t *testing.T) []joblog.Job {
	t.Helper()
	start, err := time.Parse("15:04:05", "13:00:00")
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	end := start.Add(11 * time.Minute)
	return []joblog.Job{
		{Description: "Job B", PID: "222", Start: start, End: end, Duration: end.Sub(start), SourceFile: "a.log"},
		{Description: "Job A", PID: "111", Start: start, End: start.Add(3 * time.Minute), Duration: 3 * time.Minute, SourceFile: "a.log"},
	}
}

func TestTextReportWriter(t *testing.T) {
	t.Parallel()

	jobs := sampleJobs(t)
	var buf bytes.Buffer
	writer := NewTextReportWriter(&buf, false)
	lines := []report.Line{
		{Level: report.LevelError, Job: jobs[0]},
		{Level: report.LevelWarning, Job: jobs[1]},
	}
	if err := writer.WriteLines(lines); err != nil {
		t.Fatalf("write lines: %v", err)
	}

	want := "ERROR: Job B (PID 222) from 13:00:00 to 13:11:00 - Duration: 0:11:00\n" +
		"WARNING: Job A (PID 111) from 13:00:00 to 13:03:00 - Duration: 0:03:00\n"
	if buf.String() != want {
		t.Fatalf("unexpected report output:\n%s", buf.String())
	}
}

func TestTextReportWriter_ColorKeepsMessage(t *testing.T) {
	t.Parallel()

	jobs := sampleJobs(t)
	var buf bytes.Buffer
	writer := NewTextReportWriter(&buf, true)
	if err := writer.WriteLines([]report.Line{{Level: report.LevelError, Job: jobs[0]}}); err != nil {
		t.Fatalf("write lines: %v", err)
	}
	if !strings.Contains(buf.String(), "ERROR") || !strings.Contains(buf.String(), ": Job B (PID 222) from 13:00:00 to 13:11:00 - Duration: 0:11:00") {
		t.Fatalf("unexpected colored output: %q", buf.String())
	}
}

func TestJSONReportWriter(t *testing.T) {
	t.Parallel()

	jobs := sampleJobs(t)
	var buf bytes.Buffer
	writer, err := ReportWriterForFormat("json", &buf, false)
	if err != nil {
		t.Fatalf("report writer: %v", err)
	}
	if err := writer.WriteLines([]report.Line{{Level: report.LevelError, Job: jobs[0]}}); err != nil {
		t.Fatalf("write lines: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\nraw: %s", err, buf.String())
	}
	if got["level"] != "ERROR" || got["pid"] != "222" || got["duration"] != "0:11:00" {
		t.Fatalf("unexpected JSON line: %v", got)
	}
	if got["duration_seconds"] != float64(660) {
		t.Fatalf("expected 660 seconds, got %v", got["duration_seconds"])
	}
}

func TestReportWriterForFormat_Unsupported(t *testing.T) {
	t.Parallel()

	if _, err := ReportWriterForFormat("yaml", &bytes.Buffer{}, false); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestCSVWriterRoundTripsThroughClassifier(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jobs.csv")
	if err := (&CSVWriter{}).Write(path, sampleJobs(t)); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := (&importer.CSVReader{}).Read(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	lines, err := report.ClassifyRecords(records, report.DefaultThresholds())
	if err != nil {
		t.Fatalf("classify records: %v", err)
	}
	if len(lines) != 1 || lines[0].Level != report.LevelError || lines[0].Job.PID != "222" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
	if lines[0].Job.SourceFile != "a.log" {
		t.Fatalf("expected source file to survive export, got %q", lines[0].Job.SourceFile)
	}
}

func TestExcelWriterRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	if err := (&ExcelWriter{}).Write(path, sampleJobs(t)); err != nil {
		t.Fatalf("write excel: %v", err)
	}

	records, err := (&importer.ExcelReader{}).Read(path)
	if err != nil {
		t.Fatalf("read excel: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].Get("duration"); got != "0:11:00" {
		t.Fatalf("unexpected duration %q", got)
	}
}

func TestSQLiteWriterReplacesJobs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jobs.db")
	writer, err := WriterForFormat(DetectFormat(path))
	if err != nil {
		t.Fatalf("writer for format: %v", err)
	}
	jobs := sampleJobs(t)
	if err := writer.Write(path, jobs); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := writer.Write(path, jobs[:1]); err != nil {
		t.Fatalf("second write: %v", err)
	}

	store, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()
	listed, err := store.ListJobs()
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 job after replace, got %d", len(listed))
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"out.csv":  "csv",
		"out.XLSX": "excel",
		"out.db":   "sqlite",
		"out":      "csv",
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Fatalf("DetectFormat(%q): want %q, got %q", path, want, got)
		}
	}
}

func TestBuildAndWriteSummaries(t *testing.T) {
	t.Parallel()

	jobs := sampleJobs(t)
	result := &importer.Result{
		Files: []importer.FileResult{
			{Path: "a.log", PairResult: importer.PairResult{Jobs: jobs, RowsRead: 5, RowsMalformed: 1}},
			{Path: "b.log", Err: errors.New("boom")},
		},
	}
	lines := report.Classify(jobs, report.DefaultThresholds())

	summaries := BuildSummaries(result, lines)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].JobsPaired != 2 || summaries[0].Errors != 1 || summaries[0].Warnings != 0 {
		t.Fatalf("unexpected summary: %+v", summaries[0])
	}

	var buf bytes.Buffer
	if err := WriteSummaries(&buf, summaries); err != nil {
		t.Fatalf("write summaries: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "a.log") || !strings.Contains(out, "failed: boom") {
		t.Fatalf("unexpected summary output:\n%s", out)
	}
}
