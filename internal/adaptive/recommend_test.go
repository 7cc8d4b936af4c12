package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityak/codedrill/internal/problems"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name string
		c    Counters
		want problems.Difficulty
	}{
		{
			name: "fresh user defaults to easy",
			c:    Counters{},
			want: problems.Easy,
		},
		{
			name: "strong easy with streak but no medium history steps to medium",
			c: Counters{
				Easy:          TierCount{Success: 8, Total: 10},
				CurrentStreak: 3,
			},
			want: problems.Medium,
		},
		{
			name: "strong easy and strong medium steps to hard",
			c: Counters{
				Easy:          TierCount{Success: 9, Total: 10},
				Medium:        TierCount{Success: 3, Total: 4},
				CurrentStreak: 2,
			},
			want: problems.Hard,
		},
		{
			name: "strong easy without streak falls through",
			c: Counters{
				Easy:          TierCount{Success: 9, Total: 10},
				CurrentStreak: 1,
				TotalSolved:   9,
			},
			want: problems.Medium,
		},
		{
			name: "comfortable medium goes hard",
			c: Counters{
				Medium: TierCount{Success: 7, Total: 10},
			},
			want: problems.Hard,
		},
		{
			name: "struggling on easy backs off",
			c: Counters{
				Easy:        TierCount{Success: 1, Total: 4},
				TotalSolved: 20,
			},
			want: problems.Easy,
		},
		{
			name: "struggling on medium backs off",
			c: Counters{
				Easy:        TierCount{Success: 2, Total: 3},
				Medium:      TierCount{Success: 1, Total: 4},
				TotalSolved: 20,
			},
			want: problems.Easy,
		},
		{
			name: "single easy attempt is not enough signal",
			c: Counters{
				Easy: TierCount{Success: 0, Total: 1},
			},
			want: problems.Easy,
		},
		{
			name: "volume fallback medium",
			c:    Counters{TotalSolved: 7},
			want: problems.Medium,
		},
		{
			name: "volume fallback hard",
			c:    Counters{TotalSolved: 15},
			want: problems.Hard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.c))
		})
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	c := Counters{
		Easy:          TierCount{Success: 8, Total: 10},
		Medium:        TierCount{Success: 1, Total: 2},
		CurrentStreak: 4,
		TotalSolved:   9,
	}
	first := Recommend(c)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Recommend(c))
	}
}

func TestCountersRecord(t *testing.T) {
	var c Counters

	c.Record(problems.Easy, true)
	c.Record(problems.Easy, true)
	c.Record(problems.Medium, false)
	c.Record(problems.Hard, true)

	assert.Equal(t, TierCount{Success: 2, Total: 2}, c.Easy)
	assert.Equal(t, TierCount{Success: 0, Total: 1}, c.Medium)
	assert.Equal(t, TierCount{Success: 1, Total: 1}, c.Hard)
	assert.Equal(t, 3, c.TotalSolved)
	assert.Equal(t, 1, c.CurrentStreak) // reset by the medium miss
	assert.Equal(t, 2, c.BestStreak)
}

func TestTierCountRate(t *testing.T) {
	assert.Equal(t, 0.0, TierCount{}.Rate())
	assert.Equal(t, 0.75, TierCount{Success: 3, Total: 4}.Rate())
}
