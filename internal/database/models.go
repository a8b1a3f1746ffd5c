package database

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Run represents one evaluation batch written to the database
type Run struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Total      int       `json:"total"`
	ApplyCount int       `json:"apply_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Evaluation represents one scored posting row
type Evaluation struct {
	ID          string  `json:"id"`
	RunID       string  `json:"run_id"`
	Position    int     `json:"position"` // Rank within the run, 0 is the highest score
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Salary      string  `json:"salary"`
	Extra       *string `json:"extra,omitempty"` // JSON object of unrecognized source columns

	AcceptScore int    `json:"accept_score"`
	Decision    string `json:"decision"`

	CVSummary string `json:"cv_summary"`
	CVSkills  string `json:"cv_skills"`
	CVBullets string `json:"cv_experience_bullets"`

	Signals   *string   `json:"signals,omitempty"` // JSON signal bundle
	CreatedAt time.Time `json:"created_at"`
}

// GetExtra parses the extra columns JSON
func (e *Evaluation) GetExtra() (map[string]string, error) {
	if e.Extra == nil {
		return nil, nil
	}
	var data map[string]string
	if err := json.Unmarshal([]byte(*e.Extra), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// ListOptions contains options for listing evaluations
type ListOptions struct {
	RunID    *string
	Decision *string
	MinScore int
	Limit    int
	Offset   int
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
