package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"jobaudit/joblog"
	"os"
)

// CSVLogReader reads comma-separated log rows without a header line.
type CSVLogReader struct{}

func (r *CSVLogReader) ReadRows(path string) ([]joblog.Row, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	return logRowsFromRows(rows), nil
}

// CSVReader reads CSV files whose first line holds the column names.
type CSVReader struct{}

func (r *CSVReader) Read(path string) ([]Record, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read csv header: %s is empty", path)
	}
	return recordsFromRows(rows), nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	return parseCSVRows(file, path)
}

func parseCSVRows(input io.Reader, path string) ([][]string, error) {
	reader := csv.NewReader(input)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows := make([][]string, 0, 128)
	rowNumber := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d of %s: %w", rowNumber+1, path, err)
		}
		rows = append(rows, row)
		rowNumber++
	}

	return rows, nil
}
