package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/vijay-prabhu/jobfit/internal/evaluator"
)

// CSVWriter writes evaluations to a csv file
type CSVWriter struct {
	path string
}

// NewCSV creates a csv writer
func NewCSV(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Name returns the destination path
func (w *CSVWriter) Name() string {
	return w.path
}

// Write saves a header row followed by one row per evaluation
func (w *CSVWriter) Write(ctx context.Context, columns []string, evals []evaluator.Evaluation) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create csv: %w", err)
	}

	if err := WriteCSV(f, columns, evals); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// WriteCSV writes evaluations as csv to the given writer
func WriteCSV(out io.Writer, columns []string, evals []evaluator.Evaluation) error {
	w := csv.NewWriter(out)

	if err := w.Write(Header(columns)); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range evals {
		if err := w.Write(Strings(columns, e)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
