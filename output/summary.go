package output

import (
	"fmt"
	"io"
	"jobaudit/importer"
	"jobaudit/report"
	"text/tabwriter"
)

// FileSummary condenses the pairing and classification outcome of one file.
type FileSummary struct {
	Path          string
	RowsRead      int
	JobsPaired    int
	RowsMalformed int
	UnmatchedEnds int
	Unterminated  int
	Warnings      int
	Errors        int
	Err           error
}

func BuildSummaries(result *importer.Result, lines []report.Line) []FileSummary {
	if result == nil || len(result.Files) == 0 {
		return []FileSummary{}
	}

	warningsByFile := make(map[string]int)
	errorsByFile := make(map[string]int)
	for _, line := range lines {
		switch line.Level {
		case report.LevelWarning:
			warningsByFile[line.Job.SourceFile]++
		case report.LevelError:
			errorsByFile[line.Job.SourceFile]++
		}
	}

	summaries := make([]FileSummary, 0, len(result.Files))
	for _, file := range result.Files {
		summaries = append(summaries, FileSummary{
			Path:          file.Path,
			RowsRead:      file.RowsRead,
			JobsPaired:    len(file.Jobs),
			RowsMalformed: file.RowsMalformed,
			UnmatchedEnds: file.UnmatchedEnds,
			Unterminated:  file.Unterminated,
			Warnings:      warningsByFile[file.Path],
			Errors:        errorsByFile[file.Path],
			Err:           file.Err,
		})
	}
	return summaries
}

func WriteSummaries(w io.Writer, summaries []FileSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "File\tRows\tJobs\tMalformed\tUnmatched\tUnterminated\tWarnings\tErrors")
	for _, summary := range summaries {
		if summary.Err != nil {
			fmt.Fprintf(tw, "%s\tfailed: %v\t\t\t\t\t\t\n", summary.Path, summary.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			summary.Path,
			summary.RowsRead,
			summary.JobsPaired,
			summary.RowsMalformed,
			summary.UnmatchedEnds,
			summary.Unterminated,
			summary.Warnings,
			summary.Errors,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
