package session

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityak/codedrill/internal/judge"
	"github.com/adityak/codedrill/internal/problems"
	"github.com/adityak/codedrill/internal/progress"
	"github.com/adityak/codedrill/internal/store"
)

// verdictJudge returns a fixed verdict for every submission.
type verdictJudge struct {
	pass bool
	runs int
}

func (j *verdictJudge) Run(_ context.Context, sub judge.Submission) (*judge.Result, error) {
	j.runs++
	cases := make([]judge.CaseResult, len(sub.TestCases))
	for i, tc := range sub.TestCases {
		cases[i] = judge.CaseResult{
			Input:    tc.Input,
			Expected: tc.Expected,
			Actual:   tc.Expected,
			Passed:   j.pass,
		}
	}
	return &judge.Result{AllPassed: j.pass, Cases: cases}, nil
}

func newTestEngine(t *testing.T, j judge.Judge) (*Engine, *store.Store) {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	e, err := New(context.Background(), Options{
		Progress: progress.NewStore(st.RecordRepo()),
		Attempts: st.AttemptRepo(),
		Judge:    j,
		Rand:     rand.New(rand.NewPCG(7, 7)),
	})
	require.NoError(t, err)
	return e, st
}

func TestNewEngineStartsAtEasyForFreshUser(t *testing.T) {
	e, _ := newTestEngine(t, &verdictJudge{})

	// A fresh document carries the demo record but zero counters, so the
	// fallback tier applies.
	assert.Equal(t, problems.Easy, e.Tier())
	assert.NotEmpty(t, e.ID())
}

func TestNextServesWithoutRepeats(t *testing.T) {
	e, _ := newTestEngine(t, &verdictJudge{})
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p, ok := e.Next(ctx)
		require.True(t, ok)
		assert.False(t, seen[p.ID], "problem %s served twice", p.ID)
		seen[p.ID] = true
	}
}

func TestNextRecyclesWhenCatalogExhausted(t *testing.T) {
	e, _ := newTestEngine(t, &verdictJudge{})
	ctx := context.Background()

	total := len(problems.Catalog())
	for i := 0; i < total+5; i++ {
		_, ok := e.Next(ctx)
		require.True(t, ok, "iteration %d", i)
	}
}

func TestSubmitRecordsAttemptAndProgress(t *testing.T) {
	j := &verdictJudge{pass: true}
	e, st := newTestEngine(t, j)
	ctx := context.Background()

	p, ok := e.Next(ctx)
	require.True(t, ok)

	out, err := e.Submit(ctx, *p, "python", "print('hi')")
	require.NoError(t, err)
	assert.True(t, out.Solved)
	assert.Equal(t, 1, j.runs)

	attempts, err := st.AttemptRepo().Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, p.ID, attempts[0].ProblemID)
	assert.Equal(t, e.ID(), attempts[0].SessionID)
	assert.True(t, attempts[0].Solved)
}

func TestSubmitFailureKeepsCounting(t *testing.T) {
	e, _ := newTestEngine(t, &verdictJudge{pass: false})
	ctx := context.Background()

	p, ok := e.Next(ctx)
	require.True(t, ok)

	out, err := e.Submit(ctx, *p, "python", "pass")
	require.NoError(t, err)
	assert.False(t, out.Solved)

	sum := e.Summary()
	assert.Equal(t, 1, sum.Attempted)
	assert.Equal(t, 0, sum.Solved)
	assert.Equal(t, 0.0, sum.Accuracy)
}

func TestTierChangeRebuildsQueue(t *testing.T) {
	e, _ := newTestEngine(t, &verdictJudge{pass: true})
	ctx := context.Background()

	// Solving easy problems eventually moves the recommendation off easy:
	// three easy successes with a streak trip the promotion rule.
	var changed bool
	for i := 0; i < 6 && !changed; i++ {
		p, ok := e.Next(ctx)
		require.True(t, ok)
		if p.Difficulty != problems.Easy {
			continue
		}
		out, err := e.Submit(ctx, *p, "python", "code")
		require.NoError(t, err)
		changed = out.TierChanged
	}

	require.True(t, changed)
	assert.Equal(t, problems.Medium, e.Tier())

	// The next problem comes from a set built for the new tier.
	p, ok := e.Next(ctx)
	require.True(t, ok)
	require.NotNil(t, p)
}

func TestSummaryAccuracy(t *testing.T) {
	passJudge := &verdictJudge{pass: true}
	e, _ := newTestEngine(t, passJudge)
	ctx := context.Background()

	p1, _ := e.Next(ctx)
	_, err := e.Submit(ctx, *p1, "python", "code")
	require.NoError(t, err)

	passJudge.pass = false
	p2, _ := e.Next(ctx)
	_, err = e.Submit(ctx, *p2, "python", "code")
	require.NoError(t, err)

	sum := e.Summary()
	assert.Equal(t, 2, sum.Attempted)
	assert.Equal(t, 1, sum.Solved)
	assert.InDelta(t, 0.5, sum.Accuracy, 1e-9)
	assert.GreaterOrEqual(t, sum.Duration, time.Duration(0))
}
