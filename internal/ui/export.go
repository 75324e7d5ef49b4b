package ui

import (
	"fmt"
	"io"

	"github.com/akademik/akademik/internal/app/summary"
	"github.com/xuri/excelize/v2"
)

const (
	gradebookSheet  = "Notlar"
	attendanceSheet = "Devam"
)

var fills = map[summary.Color]string{
	summary.Green:  "#C6EFCE",
	summary.Yellow: "#FFEB9C",
	summary.Red:    "#FFC7CE",
}

type workbook struct {
	file   *excelize.File
	sheet  string
	styles map[summary.Color]int
	header int
}

func newWorkbook(sheet string) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	wb := &workbook{file: f, sheet: sheet, styles: make(map[summary.Color]int)}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	wb.header = header

	for color, fill := range fills {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
		})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create style: %w", err)
		}
		wb.styles[color] = id
	}
	return wb, nil
}

func (wb *workbook) row(n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return wb.file.SetSheetRow(wb.sheet, cell, &values)
}

func (wb *workbook) headerRow(values []any) error {
	if err := wb.row(1, values); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), 1)
	if err != nil {
		return err
	}
	return wb.file.SetCellStyle(wb.sheet, "A1", last, wb.header)
}

func (wb *workbook) paint(col, row int, color summary.Color) error {
	style, ok := wb.styles[color]
	if !ok {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return wb.file.SetCellStyle(wb.sheet, cell, cell, style)
}

func (wb *workbook) write(w io.Writer) error {
	defer wb.file.Close()
	if err := wb.file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// ExportGradebook writes the gradebook as an xlsx workbook. Average cells are
// filled with their threshold colour.
func ExportGradebook(w io.Writer, page *GradebookPage) error {
	wb, err := newWorkbook(gradebookSheet)
	if err != nil {
		return err
	}

	header := []any{"Öğrenci No", "Ad Soyad"}
	for _, c := range page.Components {
		header = append(header, fmt.Sprintf("%s (%%%s)", c.ComponentName, c.WeightPercent.String()))
	}
	header = append(header, "Ortalama", "Harf")
	if err := wb.headerRow(header); err != nil {
		wb.file.Close()
		return err
	}

	avgCol := len(page.Components) + 3
	for i, s := range page.Book.Students {
		values := []any{s.StudentNumber, s.FullName}
		for _, c := range page.Components {
			if score, ok := page.Book.Score(s.EnrollmentID, c.ComponentID); ok {
				values = append(values, score)
			} else {
				values = append(values, nil)
			}
		}
		avg := page.Average(s)
		letter := ""
		if s.LetterGrade != nil {
			letter = *s.LetterGrade
		}
		values = append(values, nullable(avg), letter)

		if err := wb.row(i+2, values); err != nil {
			wb.file.Close()
			return err
		}
		if err := wb.paint(avgCol, i+2, summary.GradeColor(avg)); err != nil {
			wb.file.Close()
			return err
		}
	}

	return wb.write(w)
}

// ExportAttendanceSummary writes the attendance summary as an xlsx workbook.
// Rate cells are filled with their threshold colour.
func ExportAttendanceSummary(w io.Writer, rows []SummaryRow) error {
	wb, err := newWorkbook(attendanceSheet)
	if err != nil {
		return err
	}

	header := []any{"Öğrenci No", "Ad Soyad", "Oturum", "Var", "Yok", "Geç", "Oran (%)", "Durum"}
	if err := wb.headerRow(header); err != nil {
		wb.file.Close()
		return err
	}

	for i, r := range rows {
		var rate any
		if r.RateOK {
			rate = r.Rate
		}
		values := []any{r.StudentNumber, r.FullName, r.TotalSessions, r.Presents, r.Absents, r.Lates, rate, r.EnrollStatus.Label()}
		if err := wb.row(i+2, values); err != nil {
			wb.file.Close()
			return err
		}
		if r.RateOK {
			if err := wb.paint(7, i+2, summary.AttendanceColor(&r.Rate)); err != nil {
				wb.file.Close()
				return err
			}
		}
	}

	return wb.write(w)
}
