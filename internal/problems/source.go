package problems

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source supplies the problem list for a practice session.
type Source interface {
	// Problems returns the current problem list. Implementations must
	// return a usable list even on failure (falling back to the built-in
	// catalog) along with the error that caused the fallback.
	Problems(ctx context.Context) ([]Problem, error)
}

// SourceConfig configures the remote problem source.
type SourceConfig struct {
	// BaseURL is the problem service root, e.g. "http://localhost:5000".
	// Empty means no remote source: the built-in catalog is used.
	BaseURL string

	// Timeout bounds a single fetch. Default: 10s.
	Timeout time.Duration
}

// DefaultSourceConfig returns a SourceConfig with sensible defaults.
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{Timeout: 10 * time.Second}
}

// SourceConfigFromEnv builds a SourceConfig from environment variables.
func SourceConfigFromEnv() SourceConfig {
	cfg := DefaultSourceConfig()
	if u := os.Getenv("CODEDRILL_PROBLEMS_URL"); u != "" {
		cfg.BaseURL = u
	}
	return cfg
}

// LocalSource always serves the built-in catalog.
type LocalSource struct{}

func (LocalSource) Problems(context.Context) ([]Problem, error) {
	return Catalog(), nil
}

// HTTPSource fetches the problem list from a remote endpoint, validating
// the payload against a JSON schema before converting it to typed problems.
// Any failure falls back to the built-in catalog.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource from cfg.
func NewHTTPSource(cfg SourceConfig) *HTTPSource {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewSource returns an HTTPSource when cfg names a remote endpoint, and the
// LocalSource otherwise.
func NewSource(cfg SourceConfig) Source {
	if cfg.BaseURL == "" {
		return LocalSource{}
	}
	return NewHTTPSource(cfg)
}

func (s *HTTPSource) Problems(ctx context.Context) ([]Problem, error) {
	list, err := s.fetch(ctx)
	if err != nil {
		return Catalog(), fmt.Errorf("remote problem source: %w", err)
	}
	return list, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]Problem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/problems", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, s.baseURL)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if err := validateList(raw); err != nil {
		return nil, err
	}

	var list []Problem
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode problems: %w", err)
	}
	return list, nil
}
