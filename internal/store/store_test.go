package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestRecordRepoRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.RecordRepo()
	ctx := context.Background()

	_, _, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	doc := []byte(`{"profile":{"name":"Alex"}}`)
	require.NoError(t, repo.Save(ctx, doc, 2))

	got, version, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, doc, got)
	assert.Equal(t, 2, version)
}

func TestRecordRepoOverwrite(t *testing.T) {
	st := openTestStore(t)
	repo := st.RecordRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []byte(`{"v":1}`), 1))
	require.NoError(t, repo.Save(ctx, []byte(`{"v":2}`), 2))

	got, version, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"v":2}`), got)
	assert.Equal(t, 2, version)
}

func TestRecordRepoDelete(t *testing.T) {
	st := openTestStore(t)
	repo := st.RecordRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []byte(`{}`), 1))
	require.NoError(t, repo.Delete(ctx))

	_, _, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent record is not an error.
	require.NoError(t, repo.Delete(ctx))
}

func TestAttemptRepoAppendAndRecent(t *testing.T) {
	st := openTestStore(t)
	repo := st.AttemptRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{ID: "a1", SessionID: "s1", ProblemID: "two-sum", Title: "Two Sum", Difficulty: "easy", Solved: true, Duration: 90 * time.Second, CreatedAt: base},
		{ID: "a2", SessionID: "s1", ProblemID: "fizzbuzz", Title: "FizzBuzz", Difficulty: "easy", Solved: false, Duration: 2 * time.Minute, CreatedAt: base.Add(time.Minute)},
		{ID: "a3", SessionID: "s1", ProblemID: "two-sum", Title: "Two Sum", Difficulty: "easy", Solved: true, Duration: time.Minute, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, a := range attempts {
		require.NoError(t, repo.Append(ctx, a))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "a3", recent[0].ID)
	assert.Equal(t, "a2", recent[1].ID)
	assert.True(t, recent[0].Solved)
	assert.Equal(t, time.Minute, recent[0].Duration)

	// Distinct problem count: two-sum solved twice counts once.
	solved, err := repo.CountSolved(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, solved)
}

func TestAttemptRepoDeleteAll(t *testing.T) {
	st := openTestStore(t)
	repo := st.AttemptRepo()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, Attempt{ID: "a1", ProblemID: "p", Title: "P", Difficulty: "easy"}))
	require.NoError(t, repo.DeleteAll(ctx))

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestUsageRepoAppend(t *testing.T) {
	st := openTestStore(t)
	repo := st.UsageRepo()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, UsageRecord{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "hint",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    310,
		Success:      true,
	}))

	var n int
	require.NoError(t, st.DB().QueryRow(`SELECT COUNT(*) FROM llm_requests`).Scan(&n))
	assert.Equal(t, 1, n)

	require.NoError(t, repo.DeleteAll(ctx))
	require.NoError(t, st.DB().QueryRow(`SELECT COUNT(*) FROM llm_requests`).Scan(&n))
	assert.Equal(t, 0, n)
}
