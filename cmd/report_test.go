package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestExecuteReportPrintsFlaggedJobs(t *testing.T) {
	t.Parallel()

	logPath := writeTestFile(t, t.TempDir(), "jobs.log", sampleLog+"bad row\n")

	var stdout, stderr bytes.Buffer
	if err := executeReport(testConfig(logPath), &stdout, &stderr, discardLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		`Skipping malformed row: ["bad row"]`,
		"WARNING: nightly backup (PID 100) from 11:00:00 to 11:07:00 - Duration: 0:07:00",
		"ERROR: report build (PID 300) from 12:00:00 to 12:15:30 - Duration: 0:15:30",
		"",
	}, "\n")
	if stdout.String() != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", stdout.String(), want)
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", stderr.String())
	}
}

func TestExecuteReportJSONKeepsDiagnosticsOnStderr(t *testing.T) {
	t.Parallel()

	logPath := writeTestFile(t, t.TempDir(), "jobs.log", "oops,only,three\n"+sampleLog)
	cfg := testConfig(logPath)
	cfg.Report.Output = "json"

	var stdout, stderr bytes.Buffer
	if err := executeReport(cfg, &stdout, &stderr, discardLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stderr.String(), "Skipping malformed row") {
		t.Fatalf("expected malformed notice on stderr, got %q", stderr.String())
	}

	decoder := json.NewDecoder(&stdout)
	levels := make([]string, 0)
	for decoder.More() {
		var line struct {
			Level       string  `json:"level"`
			PID         string  `json:"pid"`
			DurationSec float64 `json:"duration_seconds"`
		}
		if err := decoder.Decode(&line); err != nil {
			t.Fatalf("decode report line: %v", err)
		}
		levels = append(levels, line.Level+":"+line.PID)
	}
	if strings.Join(levels, ",") != "WARNING:100,ERROR:300" {
		t.Fatalf("unexpected json lines: %v", levels)
	}
}

func TestExecuteReportDirectoryAbortsOnFirstFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "a.log", sampleLog)
	writeTestFile(t, dir, "b.log", "not-a-time,job,START,1\n")
	writeTestFile(t, dir, "c.log", sampleLog)

	cfg := testConfig("")
	cfg.Recursive = dir

	var stdout, stderr bytes.Buffer
	err := executeReport(cfg, &stdout, &stderr, discardLogger())
	if err == nil {
		t.Fatalf("expected timestamp error")
	}
	if !strings.Contains(err.Error(), "b.log") || !strings.Contains(err.Error(), "row 1") {
		t.Fatalf("expected error to name file and row, got %v", err)
	}
	if got := strings.Count(stdout.String(), "WARNING:"); got != 1 {
		t.Fatalf("expected only a.log to be reported, got %d warnings in:\n%s", got, stdout.String())
	}
}

func TestExecuteReportDirectoryContinueOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "a.log", sampleLog)
	writeTestFile(t, dir, "b.log", "not-a-time,job,START,1\n")
	writeTestFile(t, dir, "c.log", sampleLog)

	cfg := testConfig("")
	cfg.Recursive = dir
	cfg.ContinueOnError = true
	cfg.Report.Summary = true

	var stdout, stderr bytes.Buffer
	err := executeReport(cfg, &stdout, &stderr, discardLogger())
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	if got := strings.Count(stdout.String(), "WARNING:"); got != 2 {
		t.Fatalf("expected a.log and c.log to be reported, got %d warnings in:\n%s", got, stdout.String())
	}
	if !strings.Contains(stdout.String(), "Unterminated") || !strings.Contains(stdout.String(), "failed:") {
		t.Fatalf("expected summary table with failed row, got:\n%s", stdout.String())
	}
}

func TestExecuteReportMissingFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t.TempDir() + "/missing.log")

	var stdout, stderr bytes.Buffer
	if err := executeReport(cfg, &stdout, &stderr, discardLogger()); err == nil {
		t.Fatalf("expected error for missing log file")
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no report output, got %q", stdout.String())
	}
}
