package posting

import (
	"reflect"
	"testing"
)

func TestNormalizeColumns(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected []string
	}{
		{
			name:     "all missing",
			header:   nil,
			expected: []string{"url", "title", "company", "description", "location", "salary"},
		},
		{
			name:     "keeps source order and extras",
			header:   []string{"Title", "posted", "description"},
			expected: []string{"Title", "posted", "description", "url", "company", "location", "salary"},
		},
		{
			name:     "skips blank headers",
			header:   []string{"url", " ", "title", "company", "description", "location", "salary"},
			expected: []string{"url", "title", "company", "description", "location", "salary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeColumns(tt.header)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NormalizeColumns() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFromRecord(t *testing.T) {
	header := []string{"Title", "Company", "description", "posted"}
	row := []string{"PM", "Acme"}

	p := FromRecord(header, row)

	if p.Title != "PM" {
		t.Errorf("Title = %q, want %q", p.Title, "PM")
	}
	if p.Company != "Acme" {
		t.Errorf("Company = %q, want %q", p.Company, "Acme")
	}
	if p.Description != "" {
		t.Errorf("Description = %q, want empty", p.Description)
	}
	if got := p.Get("posted"); got != "" {
		t.Errorf("Get(posted) = %q, want empty", got)
	}
	if _, ok := p.Extra["posted"]; !ok {
		t.Error("expected extra column to be kept")
	}
	if got := p.Get("TITLE"); got != "PM" {
		t.Errorf("Get(TITLE) = %q, want %q", got, "PM")
	}
}

func TestNewBatch_SkipsBlankRows(t *testing.T) {
	header := []string{"title", "description"}
	rows := [][]string{
		{"PM", "Own the roadmap"},
		{"", "  "},
		{"Senior PM", ""},
	}

	b := NewBatch(header, rows)

	if len(b.Postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(b.Postings))
	}
	if b.Postings[1].Title != "Senior PM" {
		t.Errorf("second posting title = %q, want %q", b.Postings[1].Title, "Senior PM")
	}
	if len(b.Columns) != 6 {
		t.Errorf("expected 6 columns, got %d: %v", len(b.Columns), b.Columns)
	}
}
