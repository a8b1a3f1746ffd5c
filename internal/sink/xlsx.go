package sink

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vijay-prabhu/jobfit/internal/evaluator"
)

const sheetName = "Sheet1"

// XLSXWriter writes evaluations to a spreadsheet file
type XLSXWriter struct {
	path string
}

// NewXLSX creates an xlsx writer
func NewXLSX(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Name returns the destination path
func (w *XLSXWriter) Name() string {
	return w.path
}

// Write saves a header row followed by one row per evaluation
func (w *XLSXWriter) Write(ctx context.Context, columns []string, evals []evaluator.Evaluation) error {
	f := excelize.NewFile()
	defer f.Close()

	header := Header(columns)
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}

	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range evals {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := Values(columns, e)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save xlsx: %w", err)
	}

	return nil
}
