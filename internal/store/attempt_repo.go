package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// attemptRepo implements AttemptRepo over the attempts table.
type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, a Attempt) error {
	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, session_id, problem_id, title, difficulty, solved, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SessionID, a.ProblemID, a.Title, a.Difficulty,
		boolToInt(a.Solved), a.Duration.Milliseconds(),
		created.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, problem_id, title, difficulty, solved, duration_ms, created_at
		 FROM attempts ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var solved int
		var durationMs int64
		var created string
		if err := rows.Scan(&a.ID, &a.SessionID, &a.ProblemID, &a.Title,
			&a.Difficulty, &solved, &durationMs, &created); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Solved = solved != 0
		a.Duration = time.Duration(durationMs) * time.Millisecond
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			a.CreatedAt = t
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) CountSolved(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT problem_id) FROM attempts WHERE solved = 1`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count solved: %w", err)
	}
	return n, nil
}

func (r *attemptRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
