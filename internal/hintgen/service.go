package hintgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adityak/codedrill/internal/judge"
	"github.com/adityak/codedrill/internal/llm"
	"github.com/adityak/codedrill/internal/problems"
)

// Hint is a graded nudge toward fixing a failing submission.
type Hint struct {
	Text        string
	Concept     string
	Level       int
	Explanation string
}

// Service produces hints through the LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a hint Service with the given provider and config.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// hintOutput is the raw LLM response before validation.
type hintOutput struct {
	Hint        string `json:"hint"`
	Concept     string `json:"concept"`
	Level       int    `json:"level"`
	Explanation string `json:"explanation"`
}

// Hint generates a hint for the given problem and submission. level asks
// for a 1 (gentle) to 3 (approach outline) hint; out-of-range values are
// clamped. Hidden test cases are excluded from the prompt.
func (s *Service) Hint(ctx context.Context, p problems.Problem, code string, failed []judge.CaseResult, level int) (*Hint, error) {
	ctx = llm.WithPurpose(ctx, "hint")

	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}

	visible := visibleCases(p, failed)
	userMsg := buildUserMessage(p, code, visible, level, s.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      HintSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hint generation failed: %w", err)
	}

	var raw hintOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse hint response: %w", err)
	}

	if raw.Hint == "" {
		return nil, fmt.Errorf("hint response had empty hint text")
	}

	return &Hint{
		Text:        raw.Hint,
		Concept:     raw.Concept,
		Level:       raw.Level,
		Explanation: raw.Explanation,
	}, nil
}

// visibleCases filters out failures on hidden test cases so the prompt
// never leaks them.
func visibleCases(p problems.Problem, failed []judge.CaseResult) []judge.CaseResult {
	hidden := make(map[string]bool, len(p.TestCases))
	for _, tc := range p.TestCases {
		if tc.Hidden {
			hidden[tc.Input] = true
		}
	}

	out := make([]judge.CaseResult, 0, len(failed))
	for _, c := range failed {
		if !hidden[c.Input] {
			out = append(out, c)
		}
	}
	return out
}
