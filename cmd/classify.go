package cmd

import (
	"io"
	"jobaudit/config"
	"jobaudit/importer"
	"jobaudit/output"
	"jobaudit/report"
	"jobaudit/storage"

	"github.com/spf13/cobra"
)

var classifyInputs []string

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify jobs from a previous export against the thresholds",
	Long: `Read job records written by "jobaudit export" (CSV, Excel, or SQLite) and print
the same WARNING/ERROR lines the report would.

CSV and Excel inputs need a Duration column; a file without one fails. Rows
whose duration cannot be read are skipped.`,
	Example: `
  # Classify an exported CSV with stricter thresholds
  jobaudit classify -i ./jobs.csv -w 2 -e 4

  # Classify jobs stored in SQLite
  jobaudit classify -i ./jobs.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadRuntime(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return executeClassify(*cfg, classifyInputs, cmd.OutOrStdout())
	},
}

func executeClassify(cfg config.Config, inputs []string, stdout io.Writer) error {
	writer, err := output.ReportWriterForFormat(cfg.Report.Output, stdout, cfg.Report.Color)
	if err != nil {
		return err
	}

	thresholds := cfg.Thresholds()
	for _, path := range inputs {
		lines, err := classifyFile(path, thresholds)
		if err != nil {
			return err
		}
		if err := writer.WriteLines(lines); err != nil {
			return err
		}
	}
	return nil
}

func classifyFile(path string, thresholds report.Thresholds) ([]report.Line, error) {
	if output.DetectFormat(path) == "sqlite" {
		store, err := storage.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		jobs, err := store.ListJobs()
		if err != nil {
			return nil, err
		}
		return report.Classify(jobs, thresholds), nil
	}

	reader, err := importer.ReaderForFormat(importer.InferFormat(path, ""))
	if err != nil {
		return nil, err
	}
	records, err := reader.Read(path)
	if err != nil {
		return nil, err
	}
	return report.ClassifyRecords(records, thresholds)
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringArrayVarP(&classifyInputs, "input", "i", nil, "Job export file path (repeatable)")

	_ = classifyCmd.MarkFlagRequired("input")
}
