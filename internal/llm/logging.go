package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/adityak/codedrill/internal/store"
)

// LoggingProvider records every LLM request as a usage record for cost
// tracking. Logging failures never fail the request.
type LoggingProvider struct {
	inner Provider
	usage store.UsageRepo
}

// WithLogging wraps a Provider with usage recording. A nil repo disables
// recording without changing behavior.
func WithLogging(p Provider, usage store.UsageRepo) Provider {
	return &LoggingProvider{inner: p, usage: usage}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	if l.usage != nil {
		rec := store.UsageRecord{
			Provider:  l.inner.ModelID(),
			Model:     l.inner.ModelID(),
			Purpose:   PurposeFrom(ctx),
			LatencyMs: time.Since(start).Milliseconds(),
			Success:   err == nil,
		}
		if resp != nil {
			rec.InputTokens = resp.Usage.InputTokens
			rec.OutputTokens = resp.Usage.OutputTokens
			rec.Model = resp.Model
		}
		if err != nil {
			rec.ErrorMessage = err.Error()
		}
		if logErr := l.usage.Append(ctx, rec); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record LLM usage: %v\n", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for usage recording.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
