package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// recordRepo implements RecordRepo over the progress_record table.
// The table holds at most one row (id = 1).
type recordRepo struct {
	db *sql.DB
}

func (r *recordRepo) Load(ctx context.Context) ([]byte, int, bool, error) {
	var doc string
	var version int
	err := r.db.QueryRowContext(ctx,
		`SELECT document, schema_version FROM progress_record WHERE id = 1`,
	).Scan(&doc, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("load progress record: %w", err)
	}
	return []byte(doc), version, true, nil
}

func (r *recordRepo) Save(ctx context.Context, doc []byte, version int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO progress_record (id, schema_version, document, updated_at)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		version, string(doc), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}

func (r *recordRepo) Delete(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM progress_record WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("delete progress record: %w", err)
	}
	return nil
}
