package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SaveRun inserts a run and its evaluations in a single transaction.
// IDs, positions and timestamps are filled in.
func (db *DB) SaveRun(ctx context.Context, run *Run, evals []Evaluation) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	run.CreatedAt = time.Now()
	run.Total = len(evals)

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (id, source, total, apply_count, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, run.ID, run.Source, run.Total, run.ApplyCount, run.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO evaluations (
				id, run_id, position, url, title, company, description, location, salary, extra,
				accept_score, decision, cv_summary, cv_skills, cv_experience_bullets, signals, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare evaluation insert: %w", err)
		}
		defer stmt.Close()

		for i := range evals {
			e := &evals[i]
			if e.ID == "" {
				e.ID = uuid.New().String()
			}
			e.RunID = run.ID
			e.Position = i
			e.CreatedAt = run.CreatedAt

			_, err := stmt.ExecContext(ctx,
				e.ID, e.RunID, e.Position, e.URL, e.Title, e.Company, e.Description, e.Location, e.Salary,
				NullString(e.Extra), e.AcceptScore, e.Decision, e.CVSummary, e.CVSkills, e.CVBullets,
				NullString(e.Signals), e.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert evaluation %d: %w", i, err)
			}
		}

		return nil
	})
}

// GetRun retrieves a run by ID
func (db *DB) GetRun(ctx context.Context, id string) (*Run, error) {
	r := &Run{}
	err := db.QueryRowContext(ctx, `
		SELECT id, source, total, apply_count, created_at
		FROM runs WHERE id = ?
	`, id).Scan(&r.ID, &r.Source, &r.Total, &r.ApplyCount, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// LatestRun retrieves the most recently written run
func (db *DB) LatestRun(ctx context.Context) (*Run, error) {
	r := &Run{}
	err := db.QueryRowContext(ctx, `
		SELECT id, source, total, apply_count, created_at
		FROM runs ORDER BY created_at DESC LIMIT 1
	`).Scan(&r.ID, &r.Source, &r.Total, &r.ApplyCount, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRuns retrieves runs, newest first
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, source, total, apply_count, created_at
		FROM runs ORDER BY created_at DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.Total, &r.ApplyCount, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// ListEvaluations retrieves evaluations with optional filters, highest score first
func (db *DB) ListEvaluations(ctx context.Context, opts ListOptions) ([]Evaluation, error) {
	query := `
		SELECT id, run_id, position, url, title, company, description, location, salary, extra,
		       accept_score, decision, cv_summary, cv_skills, cv_experience_bullets, signals, created_at
		FROM evaluations WHERE 1=1
	`
	args := []interface{}{}

	if opts.RunID != nil {
		query += " AND run_id = ?"
		args = append(args, *opts.RunID)
	}
	if opts.Decision != nil {
		query += " AND decision = ?"
		args = append(args, *opts.Decision)
	}
	if opts.MinScore > 0 {
		query += " AND accept_score >= ?"
		args = append(args, opts.MinScore)
	}

	query += " ORDER BY accept_score DESC, position ASC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
		if opts.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []Evaluation
	for rows.Next() {
		var e Evaluation
		var extra, signals sql.NullString

		err := rows.Scan(
			&e.ID, &e.RunID, &e.Position, &e.URL, &e.Title, &e.Company, &e.Description,
			&e.Location, &e.Salary, &extra, &e.AcceptScore, &e.Decision,
			&e.CVSummary, &e.CVSkills, &e.CVBullets, &signals, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		e.Extra = StringPtr(extra)
		e.Signals = StringPtr(signals)
		evals = append(evals, e)
	}

	return evals, rows.Err()
}

// DeleteRun removes a run and its evaluations
func (db *DB) DeleteRun(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("run not found: %s", id)
	}
	return nil
}
