package problems

// Difficulty is the coarse difficulty bucket used for adaptive selection.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known buckets.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// TestCase is a single input/expected-output pair used by the judge.
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected_output"`
	Hidden   bool   `json:"hidden,omitempty"`
}

// Problem is a coding problem ready to be presented to the learner.
type Problem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	Topics      []string   `json:"topics,omitempty"`
	Description string     `json:"description"`
	StarterCode string     `json:"starter_code,omitempty"`
	TestCases   []TestCase `json:"test_cases"`
}

// Pools holds the catalog partitioned by difficulty.
type Pools struct {
	Easy   []Problem
	Medium []Problem
	Hard   []Problem
}

// Partition splits a flat problem list into per-difficulty pools.
// Problems with an unknown difficulty are dropped.
func Partition(list []Problem) Pools {
	var p Pools
	for _, pr := range list {
		switch pr.Difficulty {
		case Easy:
			p.Easy = append(p.Easy, pr)
		case Medium:
			p.Medium = append(p.Medium, pr)
		case Hard:
			p.Hard = append(p.Hard, pr)
		}
	}
	return p
}

// Total returns the number of problems across all pools.
func (p Pools) Total() int {
	return len(p.Easy) + len(p.Medium) + len(p.Hard)
}

// ByDifficulty returns the pool for the given bucket.
func (p Pools) ByDifficulty(d Difficulty) []Problem {
	switch d {
	case Easy:
		return p.Easy
	case Medium:
		return p.Medium
	case Hard:
		return p.Hard
	}
	return nil
}
