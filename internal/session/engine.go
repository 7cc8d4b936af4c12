package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/adityak/codedrill/internal/adaptive"
	"github.com/adityak/codedrill/internal/judge"
	"github.com/adityak/codedrill/internal/problems"
	"github.com/adityak/codedrill/internal/progress"
	"github.com/adityak/codedrill/internal/store"
)

// Options wires an Engine's dependencies.
type Options struct {
	Progress *progress.Store
	Attempts store.AttemptRepo
	Judge    judge.Judge
	Source   problems.Source

	// Rand seeds problem selection. Nil uses the global source.
	Rand *rand.Rand

	// Now overrides the clock for tests.
	Now func() time.Time
}

// Outcome is the result of one submission, including any tier change it
// triggered.
type Outcome struct {
	Result      *judge.Result
	Solved      bool
	TierChanged bool
	Tier        problems.Difficulty
}

// Engine drives one practice session: it serves problems matched to the
// learner's tier, judges submissions, and records outcomes. Not safe for
// concurrent use; the TUI runs it from a single goroutine.
type Engine struct {
	id       string
	progress *progress.Store
	attempts store.AttemptRepo
	judge    judge.Judge
	source   problems.Source
	rng      *rand.Rand
	now      func() time.Time

	tier   problems.Difficulty
	queue  []problems.Problem
	served map[string]bool

	current      *problems.Problem
	currentStart time.Time

	startedAt time.Time
	attempted int
	solved    int
}

// New starts a session: it reads the learner's counters, recommends a
// tier, and builds the first problem set.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Progress == nil {
		return nil, fmt.Errorf("session: progress store is required")
	}
	if opts.Judge == nil {
		return nil, fmt.Errorf("session: judge is required")
	}
	if opts.Source == nil {
		opts.Source = problems.LocalSource{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	doc := opts.Progress.Load(ctx)

	e := &Engine{
		id:        uuid.NewString(),
		progress:  opts.Progress,
		attempts:  opts.Attempts,
		judge:     opts.Judge,
		source:    opts.Source,
		rng:       opts.Rand,
		now:       opts.Now,
		tier:      adaptive.Recommend(doc.Counters),
		served:    make(map[string]bool),
		startedAt: opts.Now(),
	}

	if err := e.rebuild(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// ID returns the session's unique identifier.
func (e *Engine) ID() string { return e.id }

// Tier returns the current recommended difficulty.
func (e *Engine) Tier() problems.Difficulty { return e.tier }

// Next returns the next problem to work on. ok is false only when the
// problem source is empty.
func (e *Engine) Next(ctx context.Context) (*problems.Problem, bool) {
	if len(e.queue) == 0 {
		if err := e.rebuild(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: rebuilding problem set: %v\n", err)
		}
	}

	// Every problem served once: start over.
	if len(e.queue) == 0 && len(e.served) > 0 {
		e.served = make(map[string]bool)
		if err := e.rebuild(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: rebuilding problem set: %v\n", err)
		}
	}

	if len(e.queue) == 0 {
		return nil, false
	}

	p := e.queue[0]
	e.queue = e.queue[1:]
	e.served[p.ID] = true
	e.current = &p
	e.currentStart = e.now()
	return &p, true
}

// Submit judges the given code against the current problem and records
// the outcome. A tier change empties the queue so the next problem comes
// from a set built for the new tier.
func (e *Engine) Submit(ctx context.Context, p problems.Problem, language, code string) (*Outcome, error) {
	result, err := e.judge.Run(ctx, judge.Submission{
		ProblemID: p.ID,
		Language:  language,
		Code:      code,
		TestCases: p.TestCases,
	})
	if err != nil {
		return nil, fmt.Errorf("judge submission: %w", err)
	}

	elapsed := e.elapsed()
	e.attempted++
	if result.AllPassed {
		e.solved++
	}

	doc := e.progress.RecordCodingResult(ctx, progress.CodingResult{
		Title:      p.Title,
		Difficulty: p.Difficulty,
		Solved:     result.AllPassed,
		Attempts:   1,
		TimeSpent:  elapsed,
	})

	if e.attempts != nil {
		a := store.Attempt{
			ID:         uuid.NewString(),
			SessionID:  e.id,
			ProblemID:  p.ID,
			Title:      p.Title,
			Difficulty: string(p.Difficulty),
			Solved:     result.AllPassed,
			Duration:   elapsed,
			CreatedAt:  e.now(),
		}
		if appendErr := e.attempts.Append(ctx, a); appendErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record attempt: %v\n", appendErr)
		}
	}

	out := &Outcome{
		Result: result,
		Solved: result.AllPassed,
		Tier:   e.tier,
	}

	if next := adaptive.Recommend(doc.Counters); next != e.tier {
		e.tier = next
		e.queue = nil
		out.TierChanged = true
		out.Tier = next
	}

	return out, nil
}

// rebuild fetches the problem list and builds a fresh set for the
// current tier, skipping problems already served this session.
func (e *Engine) rebuild(ctx context.Context) error {
	list, err := e.source.Problems(ctx)

	unseen := make([]problems.Problem, 0, len(list))
	for _, p := range list {
		if !e.served[p.ID] {
			unseen = append(unseen, p)
		}
	}

	e.queue = adaptive.BuildSet(e.tier, problems.Partition(unseen), e.rng)
	return err
}

func (e *Engine) elapsed() time.Duration {
	if e.currentStart.IsZero() {
		return 0
	}
	return e.now().Sub(e.currentStart)
}
