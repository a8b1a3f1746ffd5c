package posting

import "strings"

// Recognized column names
const (
	ColumnURL         = "url"
	ColumnTitle       = "title"
	ColumnCompany     = "company"
	ColumnDescription = "description"
	ColumnLocation    = "location"
	ColumnSalary      = "salary"
)

// Columns lists the recognized columns in the order they are appended when missing
var Columns = []string{
	ColumnURL,
	ColumnTitle,
	ColumnCompany,
	ColumnDescription,
	ColumnLocation,
	ColumnSalary,
}

// Posting represents a single job posting row
type Posting struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`

	// Extra holds source columns that are not recognized, keyed by header
	Extra map[string]string `json:"extra,omitempty"`
}

// Get returns the value of a column, recognized or extra
func (p Posting) Get(column string) string {
	switch normalizeHeader(column) {
	case ColumnURL:
		return p.URL
	case ColumnTitle:
		return p.Title
	case ColumnCompany:
		return p.Company
	case ColumnDescription:
		return p.Description
	case ColumnLocation:
		return p.Location
	case ColumnSalary:
		return p.Salary
	}
	return p.Extra[column]
}

// Batch is a set of postings along with the source column order
type Batch struct {
	Columns  []string
	Postings []Posting
}

// NewBatch creates a batch from a header row and data rows.
// Short rows are padded with empty values.
func NewBatch(header []string, rows [][]string) *Batch {
	b := &Batch{
		Columns:  NormalizeColumns(header),
		Postings: make([]Posting, 0, len(rows)),
	}
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		b.Postings = append(b.Postings, FromRecord(header, row))
	}
	return b
}

// NormalizeColumns returns the header with any missing recognized column appended
func NormalizeColumns(header []string) []string {
	out := make([]string, 0, len(header)+len(Columns))
	seen := make(map[string]bool, len(header))

	for _, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		out = append(out, h)
		seen[normalizeHeader(h)] = true
	}

	for _, c := range Columns {
		if !seen[c] {
			out = append(out, c)
		}
	}

	return out
}

// FromRecord maps a header/row pair onto a Posting
func FromRecord(header, row []string) Posting {
	var p Posting

	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		value := ""
		if i < len(row) {
			value = row[i]
		}

		switch normalizeHeader(h) {
		case ColumnURL:
			p.URL = value
		case ColumnTitle:
			p.Title = value
		case ColumnCompany:
			p.Company = value
		case ColumnDescription:
			p.Description = value
		case ColumnLocation:
			p.Location = value
		case ColumnSalary:
			p.Salary = value
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[h] = value
		}
	}

	return p
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
