package output

import (
	"fmt"
	"jobaudit/joblog"

	"github.com/xuri/excelize/v2"
)

const excelJobsSheet = "Jobs"

// ExcelWriter writes jobs to a single "Jobs" sheet with a bold, frozen header
// row. All cells are written as text so durations survive a round trip.
type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, jobs []joblog.Job) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), excelJobsSheet); err != nil {
		return fmt.Errorf("rename excel sheet: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create excel header style: %w", err)
	}

	stream, err := file.NewStreamWriter(excelJobsSheet)
	if err != nil {
		return fmt.Errorf("open excel stream: %w", err)
	}
	if err := stream.SetColWidth(1, 1, 40); err != nil {
		return fmt.Errorf("set excel column width: %w", err)
	}
	if err := stream.SetPanes(&excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("freeze excel header: %w", err)
	}

	if err := stream.SetRow("A1", textCells(jobHeaders), excelize.RowOpts{StyleID: headerStyle}); err != nil {
		return fmt.Errorf("write excel header: %w", err)
	}
	for i, job := range jobs {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := stream.SetRow(cell, textCells(jobValues(job))); err != nil {
			return fmt.Errorf("write excel row %d: %w", i+2, err)
		}
	}
	if err := stream.Flush(); err != nil {
		return fmt.Errorf("flush excel stream: %w", err)
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}
	return nil
}

func textCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}
	return cells
}
