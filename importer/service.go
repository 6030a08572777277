package importer

import (
	"io"
	"jobaudit/joblog"
	"log/slog"

	"github.com/hashicorp/go-multierror"
)

type FileResult struct {
	Path   string
	Format string
	PairResult
	Err error
}

type Result struct {
	FilesProcessed int
	FilesFailed    int
	RowsRead       int
	RowsMalformed  int
	Files          []FileResult
	Jobs           []joblog.Job
}

type RunOptions struct {
	// Format forces the input format; empty infers it per file.
	Format     string
	TimeFormat string
	// Diagnostics receives malformed-row notices.
	Diagnostics io.Writer
	// ContinueOnError gives every file its own failure boundary. Without it
	// the first failing file aborts the run.
	ContinueOnError bool
	// OnFile is called after each successfully paired file, before the next
	// file is read. An error from it stops the run.
	OnFile func(FileResult) error
	Logger *slog.Logger
}

// Run reads and pairs each path in turn. Pairing state never carries over
// from one file to the next.
func Run(paths []string, options RunOptions) (*Result, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result := &Result{
		Files: make([]FileResult, 0, len(paths)),
		Jobs:  make([]joblog.Job, 0, 256),
	}

	var failures *multierror.Error
	for _, path := range paths {
		fileResult := runFile(path, options, logger)
		if fileResult.Err != nil {
			if !options.ContinueOnError {
				return nil, fileResult.Err
			}
			logger.Warn("skipping failed log file", "path", path, "error", fileResult.Err)
			result.FilesFailed++
			result.Files = append(result.Files, fileResult)
			failures = multierror.Append(failures, fileResult.Err)
			continue
		}

		result.FilesProcessed++
		result.RowsRead += fileResult.RowsRead
		result.RowsMalformed += fileResult.RowsMalformed
		result.Jobs = append(result.Jobs, fileResult.Jobs...)
		result.Files = append(result.Files, fileResult)

		if options.OnFile != nil {
			if err := options.OnFile(fileResult); err != nil {
				return nil, err
			}
		}
	}

	return result, failures.ErrorOrNil()
}

func runFile(path string, options RunOptions, logger *slog.Logger) FileResult {
	format := InferFormat(path, options.Format)
	fileResult := FileResult{Path: path, Format: format}

	reader, err := LogReaderForFormat(format)
	if err != nil {
		fileResult.Err = err
		return fileResult
	}

	rows, err := reader.ReadRows(path)
	if err != nil {
		fileResult.Err = err
		return fileResult
	}

	paired, err := Pair(rows, PairOptions{
		TimeFormat:  options.TimeFormat,
		Source:      path,
		Diagnostics: options.Diagnostics,
		Logger:      logger,
	})
	if err != nil {
		fileResult.Err = err
		return fileResult
	}

	fileResult.PairResult = paired
	logger.Info("log file processed",
		"path", path,
		"format", format,
		"rows", paired.RowsRead,
		"jobs", len(paired.Jobs),
		"malformed", paired.RowsMalformed,
		"unmatched_ends", paired.UnmatchedEnds,
		"unterminated", paired.Unterminated,
	)
	return fileResult
}
