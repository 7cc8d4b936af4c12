package store

import (
	"context"
	"time"
)

// RecordRepo manages the single persisted progress document. The document
// is an opaque JSON blob to this layer; the progress package owns its shape
// and its migrations.
type RecordRepo interface {
	// Load returns the stored document and its schema version.
	// ok is false when no document has been saved yet.
	Load(ctx context.Context) (doc []byte, version int, ok bool, err error)

	// Save overwrites the stored document wholesale. There are no merge
	// semantics; callers pass the full, already-updated document.
	Save(ctx context.Context, doc []byte, version int) error

	// Delete removes the stored document. Subsequent loads report ok=false.
	Delete(ctx context.Context) error
}

// Attempt is one recorded submission outcome.
type Attempt struct {
	ID         string
	SessionID  string
	ProblemID  string
	Title      string
	Difficulty string
	Solved     bool
	Duration   time.Duration
	CreatedAt  time.Time
}

// AttemptRepo provides append and query access to attempt history.
type AttemptRepo interface {
	// Append records a submission outcome.
	Append(ctx context.Context, a Attempt) error

	// Recent returns up to limit attempts, most recent first.
	Recent(ctx context.Context, limit int) ([]Attempt, error)

	// CountSolved returns the number of solved attempts on distinct problems.
	CountSolved(ctx context.Context) (int, error)

	// DeleteAll removes all attempt history.
	DeleteAll(ctx context.Context) error
}

// UsageRecord captures one LLM API call for cost tracking.
type UsageRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// UsageRepo provides append access to LLM usage records.
type UsageRepo interface {
	// Append records an LLM API call.
	Append(ctx context.Context, r UsageRecord) error

	// DeleteAll removes all usage records.
	DeleteAll(ctx context.Context) error
}
