package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/adityak/codedrill/internal/problems"
)

// ErrUnavailable indicates the execution service could not be reached or
// answered with a server error. Attempt counters must not be touched when
// this is returned; the UI surfaces it instead.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("execution service unavailable: %v", e.Err)
	}
	return "execution service unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// Config configures the remote judge client.
type Config struct {
	// BaseURL is the execution service root, e.g. "http://localhost:5000".
	// Empty means no remote judge: the offline stub is used.
	BaseURL string

	// Timeout bounds a single run, including code execution time on the
	// service side. Default: 30s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Timeout: 30 * time.Second}
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if u := os.Getenv("CODEDRILL_JUDGE_URL"); u != "" {
		cfg.BaseURL = u
	}
	return cfg
}

// Client runs submissions against a remote execution service, one POST to
// /run/{language} per submission.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// New returns a Client when cfg names a remote service, and the offline
// Stub otherwise.
func New(cfg Config) Judge {
	if cfg.BaseURL == "" {
		return Stub{}
	}
	return NewClient(cfg)
}

type runRequest struct {
	ProblemID string              `json:"problem_id"`
	Code      string              `json:"code"`
	Language  string              `json:"language"`
	TestCases []problems.TestCase `json:"test_cases"`
}

type runResponse struct {
	AllPassed bool         `json:"all_passed"`
	Results   []CaseResult `json:"results"`
	Error     string       `json:"error,omitempty"`
}

func (c *Client) Run(ctx context.Context, sub Submission) (*Result, error) {
	body, err := json.Marshal(runRequest{
		ProblemID: sub.ProblemID,
		Code:      sub.Code,
		Language:  sub.Language,
		TestCases: sub.TestCases,
	})
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	url := fmt.Sprintf("%s/run/%s", c.baseURL, sub.Language)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 500 {
		return nil, &ErrUnavailable{Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("judge rejected submission: HTTP %d", resp.StatusCode)
	}

	var rr runResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("decode judge response: %w", err)
	}
	if rr.Error != "" {
		return nil, fmt.Errorf("judge error: %s", rr.Error)
	}

	return &Result{
		AllPassed: rr.AllPassed,
		Cases:     rr.Results,
		Duration:  time.Since(start),
	}, nil
}
