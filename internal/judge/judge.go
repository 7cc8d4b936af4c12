package judge

import (
	"context"
	"time"

	"github.com/adityak/codedrill/internal/problems"
)

// Submission is one attempt sent to the judge.
type Submission struct {
	ProblemID string
	Language  string
	Code      string
	TestCases []problems.TestCase
}

// CaseResult is the verdict for a single test case.
type CaseResult struct {
	Input    string `json:"input"`
	Expected string `json:"expected_output"`
	Actual   string `json:"actual_output"`
	Passed   bool   `json:"passed"`
}

// Result is the verdict for a whole submission.
type Result struct {
	AllPassed bool          `json:"all_passed"`
	Cases     []CaseResult  `json:"results"`
	Duration  time.Duration `json:"-"`
}

// Judge executes a submission against its test cases.
type Judge interface {
	Run(ctx context.Context, sub Submission) (*Result, error)
}
