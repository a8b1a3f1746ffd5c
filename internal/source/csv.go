package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vijay-prabhu/jobfit/internal/posting"
)

// CSVSource loads postings from a csv file with a header row
type CSVSource struct {
	path string
}

// NewCSV creates a csv source
func NewCSV(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Name returns the source identifier
func (s *CSVSource) Name() string {
	return "csv"
}

// Load reads all postings from the file
func (s *CSVSource) Load(ctx context.Context) (*posting.Batch, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses csv data with a header row into a batch
func ReadCSV(r io.Reader) (*posting.Batch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	if len(records) == 0 {
		return posting.NewBatch(nil, nil), nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	return posting.NewBatch(header, records[1:]), nil
}
