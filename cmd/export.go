package cmd

import (
	"fmt"
	"io"
	"jobaudit/config"
	"jobaudit/importer"
	"jobaudit/output"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all completed jobs to CSV, Excel, or SQLite",
	Long: `Pair START and END rows like the report does and write every completed job,
flagged or not, to a file.

Columns: Description, PID, Start, End, Duration, SourceFile.
The output format can be selected explicitly via --export-format or inferred from
the --output extension (.csv, .xlsx, .db). A SQLite export replaces the jobs
table of the target database.`,
	Example: `
  # Export jobs from ./logs.log to CSV
  jobaudit export -o ./jobs.csv

  # Export all logs in a directory to Excel
  jobaudit export -r ./logs -o ./jobs.xlsx

  # Force SQLite independent of extension
  jobaudit export -f jobs.log --export-format sqlite -o ./jobs.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return executeExport(*cfg, exportOutput, exportFormat, cmd.OutOrStdout(), logger)
	},
}

func executeExport(cfg config.Config, path, format string, stdout io.Writer, logger *slog.Logger) error {
	if strings.TrimSpace(format) == "" {
		format = output.DetectFormat(path)
	}
	writer, err := output.WriterForFormat(format)
	if err != nil {
		return err
	}

	paths, err := importer.ResolveInputs(cfg.File, cfg.Recursive, cfg.Pattern)
	if err != nil {
		return err
	}

	result, runErr := importer.Run(paths, importer.RunOptions{
		Format:          cfg.Format,
		TimeFormat:      cfg.TimeFormat,
		Diagnostics:     stdout,
		ContinueOnError: cfg.ContinueOnError,
		Logger:          logger,
	})
	if result == nil {
		return runErr
	}

	if err := writer.Write(path, result.Jobs); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Export completed. Files: %d, Rows read: %d, Rows skipped: %d, Jobs: %d, Format: %s, File: %s\n",
		result.FilesProcessed,
		result.RowsRead,
		result.RowsMalformed,
		len(result.Jobs),
		format,
		path,
	)
	return runErr
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "export-format", "", "Output format: csv|excel|sqlite (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	_ = exportCmd.MarkFlagRequired("output")
}
