package importer

import (
	"fmt"
	"jobaudit/joblog"
	"path/filepath"
	"strings"
)

// LogReader reads header-less START/END log rows.
type LogReader interface {
	ReadRows(path string) ([]joblog.Row, error)
}

// Reader reads header-based job records, such as a previous job export.
type Reader interface {
	Read(path string) ([]Record, error)
}

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// formatAliases maps accepted --format values and file extensions to the
// reader family that handles them.
var formatAliases = map[string]string{
	"csv":   FormatCSV,
	"log":   FormatCSV,
	"txt":   FormatCSV,
	"excel": FormatExcel,
	"xlsx":  FormatExcel,
	"xlsm":  FormatExcel,
	"xls":   FormatExcel,
}

func canonicalFormat(format string) (string, bool) {
	canonical, ok := formatAliases[normalizeHeader(format)]
	return canonical, ok
}

func LogReaderForFormat(format string) (LogReader, error) {
	canonical, _ := canonicalFormat(format)
	switch canonical {
	case FormatCSV:
		return &CSVLogReader{}, nil
	case FormatExcel:
		return &ExcelLogReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// ReaderForFormat accepts the same names as LogReaderForFormat except the
// plain-text log aliases, since job records always carry a header.
func ReaderForFormat(format string) (Reader, error) {
	canonical, _ := canonicalFormat(format)
	switch {
	case canonical == FormatExcel:
		return &ExcelReader{}, nil
	case normalizeHeader(format) == FormatCSV:
		return &CSVReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// InferFormat returns format when set, otherwise derives it from the file
// extension. Files with an unknown extension are treated as csv.
func InferFormat(path string, format string) string {
	if strings.TrimSpace(format) != "" {
		return format
	}
	if canonical, ok := canonicalFormat(strings.TrimPrefix(filepath.Ext(path), ".")); ok {
		return canonical
	}
	return FormatCSV
}
