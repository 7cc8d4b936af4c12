package cmd

import (
	"fmt"
	"os"

	"github.com/adityak/codedrill/internal/app"
	appdeps "github.com/adityak/codedrill/internal/app/deps"
	"github.com/adityak/codedrill/internal/hintgen"
	"github.com/adityak/codedrill/internal/judge"
	"github.com/adityak/codedrill/internal/llm"
	"github.com/adityak/codedrill/internal/problems"
	"github.com/adityak/codedrill/internal/progress"
	"github.com/adityak/codedrill/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, straightToPractice bool) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	d := appdeps.Deps{
		Progress: progress.NewStore(st.RecordRepo()),
		Attempts: st.AttemptRepo(),
		Judge:    judge.New(judge.ConfigFromEnv()),
		Source:   problems.NewSource(problems.SourceConfigFromEnv()),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.UsageRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Hints will be unavailable.")
	} else {
		d.Hints = hintgen.New(provider, hintgen.DefaultConfig())
	}

	if straightToPractice {
		return app.RunPractice(d)
	}
	return app.Run(d)
}
