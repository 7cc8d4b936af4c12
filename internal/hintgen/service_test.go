package hintgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityak/codedrill/internal/judge"
	"github.com/adityak/codedrill/internal/llm"
	"github.com/adityak/codedrill/internal/problems"
)

func testProblem() problems.Problem {
	return problems.Problem{
		ID:          "two-sum",
		Title:       "Two Sum",
		Difficulty:  problems.Easy,
		Category:    "Algorithms",
		Description: "Find two indices that sum to the target.",
		TestCases: []problems.TestCase{
			{Input: "[2,7,11,15], 9", Expected: "[0,1]"},
			{Input: "[3,3], 6", Expected: "[0,1]", Hidden: true},
		},
	}
}

func hintJSON(t *testing.T, h hintOutput) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(h)
	require.NoError(t, err)
	return b
}

func TestHintHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: hintJSON(t, hintOutput{
			Hint:        "Think about what your loop does with duplicate values.",
			Concept:     "hash map lookups",
			Level:       1,
			Explanation: "The same element is used twice.",
		}),
	})
	svc := New(mock, DefaultConfig())

	h, err := svc.Hint(context.Background(), testProblem(), "def two_sum(): pass", nil, 1)
	require.NoError(t, err)
	assert.Equal(t, "hash map lookups", h.Concept)
	assert.Equal(t, 1, h.Level)
	assert.NotEmpty(t, h.Text)
}

func TestHintPromptCarriesFailingCases(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: hintJSON(t, hintOutput{Hint: "x", Concept: "y", Level: 2, Explanation: "z"}),
	})
	svc := New(mock, DefaultConfig())

	failed := []judge.CaseResult{
		{Input: "[2,7,11,15], 9", Expected: "[0,1]", Actual: "[1,0]"},
	}
	_, err := svc.Hint(context.Background(), testProblem(), "code", failed, 2)
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "[2,7,11,15], 9")
	assert.Contains(t, msg, "Requested hint level: 2")
}

func TestHintExcludesHiddenCases(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: hintJSON(t, hintOutput{Hint: "x", Concept: "y", Level: 1, Explanation: "z"}),
	})
	svc := New(mock, DefaultConfig())

	failed := []judge.CaseResult{
		{Input: "[3,3], 6", Expected: "[0,1]", Actual: "[]"},
	}
	_, err := svc.Hint(context.Background(), testProblem(), "code", failed, 1)
	require.NoError(t, err)

	msg := mock.Calls[0].Messages[0].Content
	assert.NotContains(t, msg, "[3,3], 6")
}

func TestHintClampsLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: hintJSON(t, hintOutput{Hint: "x", Concept: "y", Level: 3, Explanation: "z"}),
	})
	svc := New(mock, DefaultConfig())

	_, err := svc.Hint(context.Background(), testProblem(), "code", nil, 9)
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Requested hint level: 3")
}

func TestHintTruncatesLongCode(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: hintJSON(t, hintOutput{Hint: "x", Concept: "y", Level: 1, Explanation: "z"}),
	})
	cfg := DefaultConfig()
	cfg.MaxCodeBytes = 16
	svc := New(mock, cfg)

	_, err := svc.Hint(context.Background(), testProblem(), strings.Repeat("a", 100), nil, 1)
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "(truncated)")
}

func TestHintEmptyResponseRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"","concept":"","level":1,"explanation":""}`),
	})
	svc := New(mock, DefaultConfig())

	_, err := svc.Hint(context.Background(), testProblem(), "code", nil, 1)
	assert.Error(t, err)
}

func TestHintProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := New(mock, DefaultConfig())

	_, err := svc.Hint(context.Background(), testProblem(), "code", nil, 1)
	require.Error(t, err)

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}
