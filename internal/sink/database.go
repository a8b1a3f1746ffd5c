package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vijay-prabhu/jobfit/internal/database"
	"github.com/vijay-prabhu/jobfit/internal/evaluator"
)

// DatabaseWriter writes a run and its evaluations to sqlite
type DatabaseWriter struct {
	path   string
	source string

	// RunID is set after a successful write
	RunID string
}

// NewDatabase creates a sqlite writer; source labels the run
func NewDatabase(path, source string) *DatabaseWriter {
	return &DatabaseWriter{path: path, source: source}
}

// Name returns the destination path
func (w *DatabaseWriter) Name() string {
	return w.path
}

// Write stores the evaluations as a new run
func (w *DatabaseWriter) Write(ctx context.Context, columns []string, evals []evaluator.Evaluation) error {
	db, err := database.Open(w.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows := make([]database.Evaluation, 0, len(evals))
	for _, e := range evals {
		row, err := toRow(e)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	run := &database.Run{
		Source:     w.source,
		ApplyCount: len(evaluator.FilterApply(evals)),
	}
	if err := db.SaveRun(ctx, run, rows); err != nil {
		return err
	}

	w.RunID = run.ID
	return nil
}

func toRow(e evaluator.Evaluation) (database.Evaluation, error) {
	p := e.Posting
	row := database.Evaluation{
		URL:         p.URL,
		Title:       p.Title,
		Company:     p.Company,
		Description: p.Description,
		Location:    p.Location,
		Salary:      p.Salary,
		AcceptScore: e.Result.Score,
		Decision:    string(e.Decision),
		CVSummary:   e.Resume.Summary,
		CVSkills:    e.Resume.Skills,
		CVBullets:   e.Resume.Bullets,
	}

	if len(p.Extra) > 0 {
		data, err := json.Marshal(p.Extra)
		if err != nil {
			return row, fmt.Errorf("failed to encode extra columns: %w", err)
		}
		extra := string(data)
		row.Extra = &extra
	}

	data, err := json.Marshal(e.Signals)
	if err != nil {
		return row, fmt.Errorf("failed to encode signals: %w", err)
	}
	signals := string(data)
	row.Signals = &signals

	return row, nil
}
