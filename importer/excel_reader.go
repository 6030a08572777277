package importer

import (
	"fmt"
	"jobaudit/joblog"

	"github.com/xuri/excelize/v2"
)

// ExcelLogReader reads log rows from the first sheet of a workbook. The
// sheet has no header row; columns are timestamp, description, status, pid.
type ExcelLogReader struct{}

func (r *ExcelLogReader) ReadRows(path string) ([]joblog.Row, error) {
	rows, err := readExcelRows(path)
	if err != nil {
		return nil, err
	}
	return logRowsFromRows(rows), nil
}

// ExcelReader reads job records from the first sheet of a workbook whose
// first row holds the column names.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]Record, error) {
	rows, err := readExcelRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file %s is empty", path)
	}
	return recordsFromRows(rows), nil
}

func readExcelRows(path string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	return rows, nil
}
