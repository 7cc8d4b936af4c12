package adaptive

import "github.com/adityak/codedrill/internal/problems"

// Minimum attempt counts before a success rate is trusted. Below these the
// rules fall through rather than reacting to one or two data points.
const (
	minEasyAttempts   = 3
	minMediumAttempts = 2
	minEasyStruggle   = 2
)

// Recommend maps cumulative attempt counters to a difficulty bucket.
// The rules are evaluated top to bottom; the first match wins.
func Recommend(c Counters) problems.Difficulty {
	easyRate := c.Easy.Rate()
	mediumRate := c.Medium.Rate()

	// Strong on easy with a live streak: step up.
	if easyRate >= 0.8 && c.Easy.Total >= minEasyAttempts && c.CurrentStreak >= 2 {
		if mediumRate >= 0.6 && c.Medium.Total >= minMediumAttempts {
			return problems.Hard
		}
		return problems.Medium
	}

	// Comfortable on medium: go hard.
	if mediumRate >= 0.7 && c.Medium.Total >= minMediumAttempts {
		return problems.Hard
	}

	// Struggling on easy or medium: back off.
	if easyRate < 0.5 && c.Easy.Total >= minEasyStruggle {
		return problems.Easy
	}
	if mediumRate < 0.4 && c.Medium.Total >= minMediumAttempts {
		return problems.Easy
	}

	// Not enough signal: fall back to total volume.
	switch {
	case c.TotalSolved < 5:
		return problems.Easy
	case c.TotalSolved < 15:
		return problems.Medium
	default:
		return problems.Hard
	}
}
