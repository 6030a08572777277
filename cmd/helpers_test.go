package cmd

import (
	"io"
	"jobaudit/config"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testConfig(file string) config.Config {
	return config.Config{
		File:             file,
		TimeFormat:       "%H:%M:%S",
		WarningThreshold: 5,
		ErrorThreshold:   10,
		Pattern:          "*.log",
		Report:           config.ReportConfig{Output: "text"},
		Log:              config.LogConfig{Level: "warn", Format: "text"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const sampleLog = `11:00:00,nightly backup,START,100
11:01:00,cache warmup,START,200
11:02:00,cache warmup,END,200
11:07:00,nightly backup,END,100
12:00:00,report build,START,300
12:15:30,report build,END,300
`
