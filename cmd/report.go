package cmd

import (
	"io"
	"jobaudit/config"
	"jobaudit/importer"
	"jobaudit/output"
	"jobaudit/report"
	"log/slog"

	"github.com/spf13/cobra"
)

func runReport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return executeReport(*cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// executeReport pairs and classifies each input file and prints its report
// lines as soon as the file is done, so malformed-row notices and report
// lines of one file stay together.
func executeReport(cfg config.Config, stdout, stderr io.Writer, logger *slog.Logger) error {
	paths, err := importer.ResolveInputs(cfg.File, cfg.Recursive, cfg.Pattern)
	if err != nil {
		return err
	}
	logger.Debug("resolved log inputs", "count", len(paths))

	writer, err := output.ReportWriterForFormat(cfg.Report.Output, stdout, cfg.Report.Color)
	if err != nil {
		return err
	}

	// Keep stdout parseable when emitting JSON.
	diagnostics := stdout
	if cfg.Report.Output == "json" {
		diagnostics = stderr
	}

	thresholds := cfg.Thresholds()
	allLines := make([]report.Line, 0)
	result, runErr := importer.Run(paths, importer.RunOptions{
		Format:          cfg.Format,
		TimeFormat:      cfg.TimeFormat,
		Diagnostics:     diagnostics,
		ContinueOnError: cfg.ContinueOnError,
		Logger:          logger,
		OnFile: func(file importer.FileResult) error {
			lines := report.Classify(file.Jobs, thresholds)
			allLines = append(allLines, lines...)
			return writer.WriteLines(lines)
		},
	})
	if result == nil {
		return runErr
	}

	if cfg.Report.Summary {
		if err := output.WriteSummaries(stdout, output.BuildSummaries(result, allLines)); err != nil {
			return err
		}
	}

	warnings, errors := report.Counts(allLines)
	logger.Info("report completed",
		"files", result.FilesProcessed,
		"failed", result.FilesFailed,
		"jobs", len(result.Jobs),
		"warnings", warnings,
		"errors", errors,
	)
	return runErr
}
