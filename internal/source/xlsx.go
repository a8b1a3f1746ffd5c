package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vijay-prabhu/jobfit/internal/posting"
)

// XLSXSource loads postings from a spreadsheet file
type XLSXSource struct {
	path  string
	sheet string
}

// NewXLSX creates an xlsx source. An empty sheet name selects the first sheet.
func NewXLSX(path, sheet string) *XLSXSource {
	return &XLSXSource{path: path, sheet: sheet}
}

// Name returns the source identifier
func (s *XLSXSource) Name() string {
	return "xlsx"
}

// Load reads all postings from the worksheet
func (s *XLSXSource) Load(ctx context.Context) (*posting.Batch, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("xlsx has no worksheets: %s", s.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return posting.NewBatch(nil, nil), nil
	}

	return posting.NewBatch(rows[0], rows[1:]), nil
}
