package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// usageRepo implements UsageRepo over the llm_requests table.
type usageRepo struct {
	db *sql.DB
}

func (r *usageRepo) Append(ctx context.Context, rec UsageRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Provider, rec.Model, rec.Purpose, rec.InputTokens, rec.OutputTokens,
		rec.LatencyMs, boolToInt(rec.Success), rec.ErrorMessage,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append usage record: %w", err)
	}
	return nil
}

func (r *usageRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM llm_requests`); err != nil {
		return fmt.Errorf("delete usage records: %w", err)
	}
	return nil
}
