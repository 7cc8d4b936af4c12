package hintgen

// Config controls the behavior of the hint Service.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxFailedCases is the maximum number of failing test cases to
	// include in the prompt for context.
	MaxFailedCases int

	// MaxCodeBytes truncates overly long submissions before prompting.
	MaxCodeBytes int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      512,
		Temperature:    0.4,
		MaxFailedCases: 3,
		MaxCodeBytes:   8192,
	}
}
