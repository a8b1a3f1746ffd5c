package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vijay-prabhu/jobfit/internal/config"
	"github.com/vijay-prabhu/jobfit/internal/posting"
)

// ErrNoInput is returned when no configured input source exists
var ErrNoInput = errors.New("no input source found")

// Source defines the interface for tabular posting loaders
type Source interface {
	// Name returns the source identifier
	Name() string

	// Load reads all postings with their column order
	Load(ctx context.Context) (*posting.Batch, error)
}

// Resolve picks the input source: Google Sheets when a spreadsheet is
// configured, otherwise the xlsx file, otherwise the csv fallback.
func Resolve(input config.InputConfig, sheets config.SheetsConfig) (Source, error) {
	if sheets.Enabled() {
		return NewSheets(sheets.SpreadsheetID, sheets.Range, sheets.CredentialsPath, sheets.TokenPath), nil
	}

	if fileExists(input.XLSXPath) {
		return NewXLSX(input.XLSXPath, input.Sheet), nil
	}

	if fileExists(input.CSVPath) {
		return NewCSV(input.CSVPath), nil
	}

	return nil, fmt.Errorf("%w: provide %s or %s", ErrNoInput, input.XLSXPath, input.CSVPath)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
