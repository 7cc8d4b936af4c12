package adaptive

import "github.com/adityak/codedrill/internal/problems"

// TierCount tallies attempts at one difficulty.
type TierCount struct {
	Success int `json:"success"`
	Total   int `json:"total"`
}

// Rate returns Success/Total, or 0 when no attempts were made.
func (t TierCount) Rate() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Success) / float64(t.Total)
}

// Counters holds cumulative per-difficulty attempt tallies. The recommender
// is a pure function of this struct.
type Counters struct {
	Easy          TierCount `json:"easy"`
	Medium        TierCount `json:"medium"`
	Hard          TierCount `json:"hard"`
	CurrentStreak int       `json:"current_streak"`
	BestStreak    int       `json:"best_streak"`
	TotalSolved   int       `json:"total_solved"`
}

// Record applies one attempt outcome for the given difficulty.
func (c *Counters) Record(d problems.Difficulty, solved bool) {
	var tc *TierCount
	switch d {
	case problems.Easy:
		tc = &c.Easy
	case problems.Medium:
		tc = &c.Medium
	case problems.Hard:
		tc = &c.Hard
	default:
		return
	}

	tc.Total++
	if solved {
		tc.Success++
		c.TotalSolved++
		c.CurrentStreak++
		if c.CurrentStreak > c.BestStreak {
			c.BestStreak = c.CurrentStreak
		}
	} else {
		c.CurrentStreak = 0
	}
}
