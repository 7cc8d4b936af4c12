package cmd

import (
	"fmt"

	"github.com/adityak/codedrill/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the resolved LLM provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Fprintln(out, "No LLM provider configured.")
				fmt.Fprintln(out, "Set CODEDRILL_LLM_PROVIDER and the matching API key,")
				fmt.Fprintln(out, "or export GEMINI_API_KEY / OPENAI_API_KEY / ANTHROPIC_API_KEY.")
				return nil
			}
			cfg = discovered
			fmt.Fprintln(out, "Provider discovered from ambient API keys:")
		} else {
			fmt.Fprintln(out, "Provider configured via CODEDRILL_* environment:")
		}

		fmt.Fprintf(out, "  provider: %s\n", cfg.Provider)
		fmt.Fprintf(out, "  model:    %s\n", providerModel(cfg))
		return nil
	},
}

func providerModel(cfg llm.Config) string {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.Model
	case "openai":
		return cfg.OpenAI.Model
	case "gemini":
		return cfg.Gemini.Model
	default:
		return "-"
	}
}
