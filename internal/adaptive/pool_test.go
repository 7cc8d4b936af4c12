package adaptive

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityak/codedrill/internal/problems"
)

func makePool(d problems.Difficulty, n int) []problems.Problem {
	out := make([]problems.Problem, n)
	for i := range out {
		out[i] = problems.Problem{
			ID:         fmt.Sprintf("%s-%d", d, i),
			Difficulty: d,
		}
	}
	return out
}

func fullPools() problems.Pools {
	return problems.Pools{
		Easy:   makePool(problems.Easy, 20),
		Medium: makePool(problems.Medium, 20),
		Hard:   makePool(problems.Hard, 20),
	}
}

func countByDifficulty(set []problems.Problem) map[problems.Difficulty]int {
	counts := make(map[problems.Difficulty]int)
	for _, p := range set {
		counts[p.Difficulty]++
	}
	return counts
}

func TestBuildSetComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		tier problems.Difficulty
		want map[problems.Difficulty]int
	}{
		{problems.Easy, map[problems.Difficulty]int{problems.Easy: 8, problems.Medium: 2}},
		{problems.Medium, map[problems.Difficulty]int{problems.Easy: 3, problems.Medium: 6, problems.Hard: 1}},
		{problems.Hard, map[problems.Difficulty]int{problems.Easy: 2, problems.Medium: 4, problems.Hard: 4}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			set := BuildSet(tt.tier, fullPools(), rng)
			assert.Equal(t, tt.want, countByDifficulty(set))
		})
	}
}

func TestBuildSetShortPoolsTakenWhole(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	pools := problems.Pools{
		Easy:   makePool(problems.Easy, 2),
		Medium: makePool(problems.Medium, 1),
	}

	set := BuildSet(problems.Easy, pools, rng)
	assert.Equal(t, map[problems.Difficulty]int{problems.Easy: 2, problems.Medium: 1}, countByDifficulty(set))
}

func TestBuildSetEmptyCatalog(t *testing.T) {
	set := BuildSet(problems.Medium, problems.Pools{}, rand.New(rand.NewPCG(5, 6)))
	assert.Empty(t, set)
}

func TestBuildSetNoDuplicates(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	set := BuildSet(problems.Hard, fullPools(), rng)

	seen := make(map[string]bool)
	for _, p := range set {
		require.False(t, seen[p.ID], "duplicate problem %s", p.ID)
		seen[p.ID] = true
	}
}

func TestBuildSetSameCompositionDifferentOrder(t *testing.T) {
	// Two runs with different seeds must agree on the multiset of
	// difficulties even though the ordering is randomized.
	a := BuildSet(problems.Medium, fullPools(), rand.New(rand.NewPCG(9, 10)))
	b := BuildSet(problems.Medium, fullPools(), rand.New(rand.NewPCG(11, 12)))
	assert.Equal(t, countByDifficulty(a), countByDifficulty(b))
}
