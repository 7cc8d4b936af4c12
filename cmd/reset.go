package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/adityak/codedrill/internal/progress"
	"github.com/adityak/codedrill/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progress, attempts, and usage history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprint(cmd.OutOrStdout(), "This deletes all progress and history. Continue? [y/N] ")
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		if err := progress.NewStore(st.RecordRepo()).Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		if err := st.AttemptRepo().DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		if err := st.UsageRepo().DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete usage records: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "All progress deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
