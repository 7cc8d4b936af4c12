package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/adityak/codedrill/internal/adaptive"
	"github.com/adityak/codedrill/internal/progress"
	"github.com/adityak/codedrill/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print your progress summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		doc := progress.NewStore(st.RecordRepo()).Load(context.Background())
		r := doc.Record
		q := r.QuickStats

		fmt.Printf("%s (%s)\n", r.Profile.Name, r.Profile.Rank)
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-18s %d days (best %d)\n", "Streak", r.StreakData.Current, r.StreakData.Longest)
		fmt.Printf("%-18s %d\n", "Tests completed", q.TestsCompleted)
		fmt.Printf("%-18s %.1f%%\n", "Avg accuracy", q.AvgAccuracy)
		fmt.Printf("%-18s %dh %dm\n", "Study time", q.StudyMinutes/60, q.StudyMinutes%60)
		fmt.Printf("%-18s %d\n", "Problems solved", q.ProblemsSolved)
		fmt.Printf("%-18s %s\n", "Recommended tier", adaptive.Recommend(doc.Counters))

		if len(r.CategoryPerformance) > 0 {
			fmt.Println()
			fmt.Println("Categories")
			fmt.Println(strings.Repeat("─", 48))
			for _, c := range r.CategoryPerformance {
				fmt.Printf("%-28s %3d  %s\n", c.Name, c.Score, c.Trend)
			}
		}

		if len(r.RecentTests) > 0 {
			fmt.Println()
			fmt.Println("Recent tests")
			fmt.Println(strings.Repeat("─", 48))
			for _, t := range r.RecentTests {
				fmt.Printf("%3d  %-28s %s\n", t.Score, t.Name, t.Date)
			}
		}

		attempts, err := st.AttemptRepo().Recent(context.Background(), 5)
		if err == nil && len(attempts) > 0 {
			distinct, _ := st.AttemptRepo().CountSolved(context.Background())
			fmt.Println()
			fmt.Printf("Recent attempts (%d distinct problems solved)\n", distinct)
			fmt.Println(strings.Repeat("─", 48))
			for _, a := range attempts {
				verdict := "✗"
				if a.Solved {
					verdict = "✓"
				}
				fmt.Printf("%s  %-28s %-8s %s\n", verdict, a.Title, a.Difficulty, a.CreatedAt.Format("2006-01-02"))
			}
		}

		return nil
	},
}
