package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/vijay-prabhu/jobfit/internal/config"
)

func TestReadCSV(t *testing.T) {
	data := "\ufeffTitle,Company,Description,posted\n" +
		"PM,Acme,\"Own the roadmap, backlog\",2024-01-01\n" +
		"Analyst,Beta\n"

	b, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}

	if len(b.Postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(b.Postings))
	}
	if b.Postings[0].Title != "PM" {
		t.Errorf("Title = %q, want %q (BOM should be stripped)", b.Postings[0].Title, "PM")
	}
	if b.Postings[0].Description != "Own the roadmap, backlog" {
		t.Errorf("Description = %q", b.Postings[0].Description)
	}
	if b.Postings[1].Description != "" {
		t.Errorf("expected short row to default to empty, got %q", b.Postings[1].Description)
	}
	if b.Columns[3] != "posted" {
		t.Errorf("expected extra column kept in order, got %v", b.Columns)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	b, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if len(b.Postings) != 0 {
		t.Errorf("expected no postings, got %d", len(b.Postings))
	}
}

func writeTestXLSX(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("failed to write row: %v", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save xlsx: %v", err)
	}
}

func TestXLSXSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.xlsx")
	writeTestXLSX(t, path, [][]interface{}{
		{"url", "title", "company", "description", "location", "salary"},
		{"https://jobs/1", "PM", "Acme", "Own the roadmap", "Palo Alto", "$95k"},
		{"https://jobs/2", "Senior PM", "Beta", "SaaS platform"},
	})

	b, err := NewXLSX(path, "").Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(b.Postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(b.Postings))
	}
	if b.Postings[0].Salary != "$95k" {
		t.Errorf("Salary = %q, want %q", b.Postings[0].Salary, "$95k")
	}
	if b.Postings[1].Location != "" {
		t.Errorf("Location = %q, want empty", b.Postings[1].Location)
	}
}

func TestXLSXSource_MissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.xlsx")
	writeTestXLSX(t, path, [][]interface{}{{"title"}})

	if _, err := NewXLSX(path, "Nope").Load(context.Background()); err == nil {
		t.Error("expected error for missing sheet")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "in.xlsx")
	csvPath := filepath.Join(dir, "in.csv")

	if err := os.WriteFile(csvPath, []byte("title\nPM\n"), 0644); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	input := config.InputConfig{XLSXPath: xlsxPath, CSVPath: csvPath}

	// xlsx missing: falls back to csv
	src, err := Resolve(input, config.SheetsConfig{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if src.Name() != "csv" {
		t.Errorf("Name() = %q, want csv", src.Name())
	}

	writeTestXLSX(t, xlsxPath, [][]interface{}{{"title"}})
	src, err = Resolve(input, config.SheetsConfig{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if src.Name() != "xlsx" {
		t.Errorf("Name() = %q, want xlsx", src.Name())
	}

	src, err = Resolve(input, config.SheetsConfig{SpreadsheetID: "sheet-id", Range: "A1:Z"})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if src.Name() != "sheets" {
		t.Errorf("Name() = %q, want sheets", src.Name())
	}

	_, err = Resolve(config.InputConfig{
		XLSXPath: filepath.Join(dir, "none.xlsx"),
		CSVPath:  filepath.Join(dir, "none.csv"),
	}, config.SheetsConfig{})
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("Resolve() error = %v, want ErrNoInput", err)
	}
}

func TestSheetsSource_Load(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"range": "Sheet1!A1:Z3",
			"majorDimension": "ROWS",
			"values": [
				["url", "title", "description"],
				["https://jobs/1", "PM", "Own the roadmap"],
				["https://jobs/2", "Analyst"]
			]
		}`)
	}))
	defer srv.Close()

	ctx := context.Background()
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(srv.Client()), option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	b, err := NewSheetsWithService(svc, "sheet-id", "A1:Z").Load(ctx)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !strings.Contains(gotPath, "/spreadsheets/sheet-id/values/") {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if len(b.Postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(b.Postings))
	}
	if b.Postings[0].Description != "Own the roadmap" {
		t.Errorf("Description = %q", b.Postings[0].Description)
	}
	if b.Postings[1].Title != "Analyst" {
		t.Errorf("Title = %q, want Analyst", b.Postings[1].Title)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	token := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}

	if err := saveToken(path, token); err != nil {
		t.Fatalf("saveToken() error: %v", err)
	}

	loaded, err := loadToken(path)
	if err != nil {
		t.Fatalf("loadToken() error: %v", err)
	}
	if loaded.AccessToken != "access" || loaded.RefreshToken != "refresh" {
		t.Errorf("unexpected token: %+v", loaded)
	}
}

func TestIsServiceAccount(t *testing.T) {
	tests := []struct {
		data     string
		expected bool
	}{
		{`{"type": "service_account"}`, true},
		{`{"installed": {"client_id": "x"}}`, false},
		{`not json`, false},
	}

	for _, tt := range tests {
		if got := isServiceAccount([]byte(tt.data)); got != tt.expected {
			t.Errorf("isServiceAccount(%q) = %v, want %v", tt.data, got, tt.expected)
		}
	}
}
