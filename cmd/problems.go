package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/adityak/codedrill/internal/problems"
	"github.com/spf13/cobra"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List the problem catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("difficulty")
		if filter != "" && filter != "easy" && filter != "medium" && filter != "hard" {
			return fmt.Errorf("invalid difficulty %q (want easy, medium, or hard)", filter)
		}

		source := problems.NewSource(problems.SourceConfigFromEnv())
		list, err := source.Problems(context.Background())
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
		}

		fmt.Printf("%-24s  %-8s  %-28s %s\n", "ID", "Level", "Title", "Category")
		fmt.Println(strings.Repeat("─", 88))

		count := 0
		for _, p := range list {
			if filter != "" && string(p.Difficulty) != filter {
				continue
			}
			count++
			fmt.Printf("%-24s  %-8s  %-28s %s\n", p.ID, p.Difficulty, p.Title, p.Category)
		}

		fmt.Println(strings.Repeat("─", 88))
		fmt.Printf("%d problems\n", count)
		return nil
	},
}

func init() {
	problemsCmd.Flags().StringP("difficulty", "d", "", "Filter by difficulty (easy, medium, hard)")
}
