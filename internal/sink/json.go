package sink

import (
	"context"
	"fmt"
	"os"

	"github.com/vijay-prabhu/jobfit/internal/evaluator"
	"github.com/vijay-prabhu/jobfit/internal/output"
)

// JSONWriter writes evaluations as a JSON array of records
type JSONWriter struct {
	path string
}

// NewJSON creates a JSON writer
func NewJSON(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Name returns the destination path
func (w *JSONWriter) Name() string {
	return w.path
}

// Write saves one object per evaluation keyed by output column
func (w *JSONWriter) Write(ctx context.Context, columns []string, evals []evaluator.Evaluation) error {
	header := Header(columns)
	records := make([]map[string]interface{}, 0, len(evals))

	for _, e := range evals {
		values := Values(columns, e)
		record := make(map[string]interface{}, len(header))
		for i, h := range header {
			record[h] = values[i]
		}
		records = append(records, record)
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create json: %w", err)
	}

	if err := output.JSONTo(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return f.Close()
}
