package llm

import (
	"context"
	"fmt"

	"github.com/adityak/codedrill/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and usage-logging middleware.
func NewProvider(ctx context.Context, cfg Config, usage store.UsageRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller, retry, logging, base.
	return WithRetry(WithLogging(base, usage), cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from CODEDRILL_* env vars, probing
// the standard provider API key vars when no explicit config is set.
func NewProviderFromEnv(ctx context.Context, usage store.UsageRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, usage)
}
