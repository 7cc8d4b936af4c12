package hintgen

import (
	"fmt"
	"strings"

	"github.com/adityak/codedrill/internal/judge"
	"github.com/adityak/codedrill/internal/problems"
)

const systemPrompt = `You are a coding mentor helping a learner who is stuck on a practice problem.

Rules:
- Give a hint, not a solution. Never include corrected code or the full algorithm.
- Ground the hint in the learner's actual submission and the failing test cases.
- Level 1 hints nudge ("what happens when the input is empty?"). Level 2 hints name the flawed spot. Level 3 hints outline the approach in prose.
- Start at level 1 unless the request asks for a deeper hint.
- Keep the hint under three sentences. Plain language, no jargon the problem statement does not use.
- If the code looks broadly correct and only an edge case fails, say which kind of input breaks it without giving the input away.`

// buildUserMessage constructs the user message from the problem, the
// learner's submission, and the failing cases, respecting Config limits.
func buildUserMessage(p problems.Problem, code string, failed []judge.CaseResult, level int, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s (%s)\n", p.Title, p.Difficulty)
	fmt.Fprintf(&b, "Category: %s\n\n", p.Category)
	b.WriteString(p.Description)
	b.WriteString("\n\nLearner's submission:\n```\n")
	b.WriteString(truncate(code, cfg.MaxCodeBytes))
	b.WriteString("\n```\n")

	b.WriteString("\nFailing test cases:\n")
	b.WriteString(buildFailedCases(failed, cfg.MaxFailedCases))

	fmt.Fprintf(&b, "\nRequested hint level: %d\n", level)

	return b.String()
}

// buildFailedCases formats failing cases for the prompt. Hidden cases
// were already stripped by the caller.
func buildFailedCases(cases []judge.CaseResult, max int) string {
	if len(cases) == 0 {
		return "None (the submission was not run, or all visible cases passed)"
	}

	if max > 0 && len(cases) > max {
		cases = cases[:max]
	}

	var b strings.Builder
	for i, c := range cases {
		fmt.Fprintf(&b, "%d. input: %s\n   expected: %s\n   got: %s\n", i+1, c.Input, c.Expected, c.Actual)
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "\n... (truncated)"
}
