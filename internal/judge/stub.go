package judge

import (
	"context"
	"strings"
)

// Stub is the offline judge used when no execution service is configured.
// It cannot run code; a submission passes a case when the expected output
// appears verbatim in the submitted text. Good enough to demo the practice
// loop without a backend, and clearly not a real verdict.
type Stub struct{}

func (Stub) Run(_ context.Context, sub Submission) (*Result, error) {
	res := &Result{AllPassed: true}
	for _, tc := range sub.TestCases {
		passed := strings.Contains(sub.Code, tc.Expected)
		res.Cases = append(res.Cases, CaseResult{
			Input:    tc.Input,
			Expected: tc.Expected,
			Passed:   passed,
		})
		if !passed {
			res.AllPassed = false
		}
	}
	return res, nil
}
