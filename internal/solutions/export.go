package solutions

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Export renders the solution's records as an XLSX workbook for admin review
// and distribution outside the API.
func (r *repo) Export(ctx context.Context, id string) (string, []byte, error) {
	sol, err := r.Find(ctx, id)
	if err != nil {
		return "", nil, err
	}

	data, err := Workbook(sol)
	if err != nil {
		return "", nil, err
	}

	r.logger.Info("solution exported", "id", sol.ID, "records", len(sol.Records))
	return fmt.Sprintf("%s.xlsx", sol.ID), data, nil
}

// Workbook builds the XLSX workbook for a solution: one sheet, one row per
// record.
func Workbook(sol *Solution) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Solutions"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	index, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(index)

	headers := []string{"#", "Question", "Answer", "Confidence", "Extracted At", "Edited"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range sol.Records {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, rec.RecordNumber)
		write(2, rec.Question)
		write(3, rec.Answer)
		write(4, rec.Confidence)
		write(5, rec.ExtractedAt.Format("2006-01-02 15:04"))
		write(6, rec.Edited())
	}

	_ = f.SetColWidth(sheet, "B", "C", 60)
	_ = f.SetColWidth(sheet, "E", "E", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
