package session

import (
	"time"

	"github.com/adityak/codedrill/internal/problems"
)

// Summary holds the data displayed on the session summary screen.
type Summary struct {
	SessionID string
	Duration  time.Duration
	Attempted int
	Solved    int
	Accuracy  float64
	FinalTier problems.Difficulty
}

// Summary builds a summary of the session so far.
func (e *Engine) Summary() *Summary {
	var accuracy float64
	if e.attempted > 0 {
		accuracy = float64(e.solved) / float64(e.attempted)
	}

	return &Summary{
		SessionID: e.id,
		Duration:  e.now().Sub(e.startedAt),
		Attempted: e.attempted,
		Solved:    e.solved,
		Accuracy:  accuracy,
		FinalTier: e.tier,
	}
}
