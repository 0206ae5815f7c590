package attendance

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

var exportHeaders = []string{
	"Date", "Employee Number", "Employee Name", "Status", "Check In", "Check Out", "Work Hours",
}

// writeWorkbook renders one row per record into a single-sheet xlsx file.
func writeWorkbook(rows []Attendance) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, h := range exportHeaders {
		if err := f.SetCellValue(exportSheet, cell(i+1, 1), h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(exportSheet, cell(1, 1), cell(len(exportHeaders), 1), headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(exportSheet, "A", "A", 12)
	_ = f.SetColWidth(exportSheet, "B", "C", 24)
	_ = f.SetColWidth(exportSheet, "D", "G", 22)

	for i, a := range rows {
		r := i + 2
		values := []interface{}{
			a.Date.Format(dateLayout),
			"",
			"",
			a.Status,
			formatClock(a.CheckIn),
			formatClock(a.CheckOut),
			a.WorkHours,
		}
		if a.Employee != nil {
			values[1] = a.Employee.EmployeeNumber
			values[2] = a.Employee.FullName()
		}
		for col, v := range values {
			if err := f.SetCellValue(exportSheet, cell(col+1, r), v); err != nil {
				return nil, err
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func exportFilename(q ListQuery, now time.Time) string {
	switch {
	case q.From != "" && q.To != "":
		return fmt.Sprintf("attendance_%s_%s.xlsx", q.From, q.To)
	case q.From != "":
		return fmt.Sprintf("attendance_from_%s.xlsx", q.From)
	default:
		return fmt.Sprintf("attendance_%s.xlsx", now.UTC().Format("20060102"))
	}
}
