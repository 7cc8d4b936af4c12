package adaptive

import (
	"math/rand/v2"

	"github.com/adityak/codedrill/internal/problems"
)

// poolMix is how many problems of each difficulty go into the working set
// for a recommended bucket.
type poolMix struct {
	easy, medium, hard int
}

var mixes = map[problems.Difficulty]poolMix{
	problems.Easy:   {easy: 8, medium: 2, hard: 0},
	problems.Medium: {easy: 3, medium: 6, hard: 1},
	problems.Hard:   {easy: 2, medium: 4, hard: 4},
}

// BuildSet assembles the working problem set for the recommended
// difficulty. Each pool is shuffled and truncated to its share of the mix,
// then the combined set is shuffled again so difficulties interleave.
// Pools shorter than their share are taken whole. An empty catalog yields
// an empty set.
func BuildSet(tier problems.Difficulty, pools problems.Pools, rng *rand.Rand) []problems.Problem {
	mix, ok := mixes[tier]
	if !ok {
		mix = mixes[problems.Easy]
	}

	set := make([]problems.Problem, 0, mix.easy+mix.medium+mix.hard)
	set = append(set, sample(pools.Easy, mix.easy, rng)...)
	set = append(set, sample(pools.Medium, mix.medium, rng)...)
	set = append(set, sample(pools.Hard, mix.hard, rng)...)

	shuffle(set, rng)
	return set
}

// sample returns up to n problems drawn uniformly from pool.
func sample(pool []problems.Problem, n int, rng *rand.Rand) []problems.Problem {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	out := make([]problems.Problem, len(pool))
	copy(out, pool)
	shuffle(out, rng)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// shuffle is a Fisher-Yates shuffle using the injected rng, falling back
// to the global source when rng is nil.
func shuffle(s []problems.Problem, rng *rand.Rand) {
	swap := func(i, j int) { s[i], s[j] = s[j], s[i] }
	if rng != nil {
		rng.Shuffle(len(s), swap)
		return
	}
	rand.Shuffle(len(s), swap)
}
