package source

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/vijay-prabhu/jobfit/internal/posting"
)

// SheetsSource loads postings from a Google Sheets range
type SheetsSource struct {
	spreadsheetID string
	readRange     string
	credPath      string
	tokenPath     string
	service       *sheets.Service
}

// NewSheets creates a Google Sheets source. Authentication happens on Load.
func NewSheets(spreadsheetID, readRange, credPath, tokenPath string) *SheetsSource {
	return &SheetsSource{
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		credPath:      credPath,
		tokenPath:     tokenPath,
	}
}

// NewSheetsWithService creates a source over an already configured service
func NewSheetsWithService(service *sheets.Service, spreadsheetID, readRange string) *SheetsSource {
	return &SheetsSource{
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		service:       service,
	}
}

// Name returns the source identifier
func (s *SheetsSource) Name() string {
	return "sheets"
}

// Authenticate builds the Sheets service from the configured credentials
func (s *SheetsSource) Authenticate(ctx context.Context) error {
	client, err := getClient(ctx, s.credPath, s.tokenPath)
	if err != nil {
		return fmt.Errorf("failed to get OAuth client: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("failed to create Sheets service: %w", err)
	}

	s.service = service
	return nil
}

// Load reads the range; the first row is the header
func (s *SheetsSource) Load(ctx context.Context) (*posting.Batch, error) {
	if s.service == nil {
		if err := s.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", s.readRange, err)
	}

	if len(resp.Values) == 0 {
		return posting.NewBatch(nil, nil), nil
	}

	header := cellStrings(resp.Values[0])
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		rows = append(rows, cellStrings(row))
	}

	return posting.NewBatch(header, rows), nil
}

func cellStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}
