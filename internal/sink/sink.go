package sink

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/jobfit/internal/config"
	"github.com/vijay-prabhu/jobfit/internal/evaluator"
)

// Result columns appended after the source columns
const (
	ColumnScore    = "accept_score"
	ColumnDecision = "decision"
	ColumnSummary  = "cv_summary"
	ColumnSkills   = "cv_skills"
	ColumnBullets  = "cv_experience_bullets"
)

// ResultColumns lists the appended columns in output order
var ResultColumns = []string{
	ColumnScore,
	ColumnDecision,
	ColumnSummary,
	ColumnSkills,
	ColumnBullets,
}

// Writer defines the interface for evaluation writers
type Writer interface {
	// Name returns a human-readable destination
	Name() string

	// Write stores the evaluations; columns are the source columns
	Write(ctx context.Context, columns []string, evals []evaluator.Evaluation) error
}

// Target pairs a writer with the view it receives
type Target struct {
	Writer    Writer
	ApplyOnly bool
}

// Header returns the output header for the given source columns
func Header(columns []string) []string {
	header := make([]string, 0, len(columns)+len(ResultColumns))
	header = append(header, columns...)
	return append(header, ResultColumns...)
}

// Values returns an output row; the score stays an int
func Values(columns []string, e evaluator.Evaluation) []interface{} {
	row := make([]interface{}, 0, len(columns)+len(ResultColumns))
	for _, c := range columns {
		row = append(row, e.Posting.Get(c))
	}
	return append(row,
		e.Result.Score,
		string(e.Decision),
		e.Resume.Summary,
		e.Resume.Skills,
		e.Resume.Bullets,
	)
}

// Strings returns an output row as text
func Strings(columns []string, e evaluator.Evaluation) []string {
	values := Values(columns, e)
	out := make([]string, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case int:
			out[i] = strconv.Itoa(v)
		case string:
			out[i] = v
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}

// Targets builds the configured writers. Empty paths are skipped.
func Targets(cfg *config.Config, source string) []Target {
	var targets []Target

	if path := cfg.OutputPath(cfg.Output.FullXLSX); path != "" {
		targets = append(targets, Target{Writer: NewXLSX(path)})
	}
	if path := cfg.OutputPath(cfg.Output.ApplyXLSX); path != "" {
		targets = append(targets, Target{Writer: NewXLSX(path), ApplyOnly: true})
	}
	if path := cfg.OutputPath(cfg.Output.ApplyCSV); path != "" {
		targets = append(targets, Target{Writer: NewCSV(path), ApplyOnly: true})
	}
	if path := cfg.OutputPath(cfg.Output.JSON); path != "" {
		targets = append(targets, Target{Writer: NewJSON(path)})
	}
	if cfg.Database.Enabled() {
		targets = append(targets, Target{Writer: NewDatabase(cfg.Database.Path, source)})
	}

	return targets
}

// WriteAll writes the sorted evaluations to every target
func WriteAll(ctx context.Context, targets []Target, columns []string, evals []evaluator.Evaluation, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	apply := evaluator.FilterApply(evals)

	for _, t := range targets {
		rows := evals
		if t.ApplyOnly {
			rows = apply
		}

		if err := t.Writer.Write(ctx, columns, rows); err != nil {
			return fmt.Errorf("failed to write %s: %w", t.Writer.Name(), err)
		}

		logger.Info("output written",
			zap.String("destination", t.Writer.Name()),
			zap.Int("rows", len(rows)),
			zap.Bool("apply_only", t.ApplyOnly),
		)
	}

	return nil
}
