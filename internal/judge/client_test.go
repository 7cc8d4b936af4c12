package judge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityak/codedrill/internal/problems"
)

func TestClientRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/run/python", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req runRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "two-sum", req.ProblemID)
		assert.Equal(t, "python", req.Language)

		_ = json.NewEncoder(w).Encode(runResponse{
			AllPassed: false,
			Results: []CaseResult{
				{Input: "2 7 11 15\n9", Expected: "0 1", Actual: "0 1", Passed: true},
				{Input: "3 2 4\n6", Expected: "1 2", Actual: "0 2", Passed: false},
			},
		})
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})
	res, err := c.Run(context.Background(), Submission{
		ProblemID: "two-sum",
		Language:  "python",
		Code:      "print(solve())",
		TestCases: []problems.TestCase{
			{Input: "2 7 11 15\n9", Expected: "0 1"},
			{Input: "3 2 4\n6", Expected: "1 2"},
		},
	})
	require.NoError(t, err)
	assert.False(t, res.AllPassed)
	require.Len(t, res.Cases, 2)
	assert.True(t, res.Cases[0].Passed)
	assert.False(t, res.Cases[1].Passed)
}

func TestClientRunServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})
	_, err := c.Run(context.Background(), Submission{Language: "python"})
	require.Error(t, err)

	var unavail *ErrUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestClientRunUnreachable(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Run(context.Background(), Submission{Language: "python"})

	var unavail *ErrUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestNewPicksStubWithoutBaseURL(t *testing.T) {
	assert.IsType(t, Stub{}, New(Config{}))
	assert.IsType(t, &Client{}, New(Config{BaseURL: "http://localhost:5000"}))
}

func TestStub(t *testing.T) {
	s := Stub{}
	res, err := s.Run(context.Background(), Submission{
		Code: "the answer is 42",
		TestCases: []problems.TestCase{
			{Input: "a", Expected: "42"},
			{Input: "b", Expected: "43"},
		},
	})
	require.NoError(t, err)
	assert.False(t, res.AllPassed)
	assert.True(t, res.Cases[0].Passed)
	assert.False(t, res.Cases[1].Passed)
}
