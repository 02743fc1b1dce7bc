package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/courseforge/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past lesson generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		slug, _ := cmd.Flags().GetString("slug")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		runs, err := s.EventRepo().ListLessonRuns(ctx, store.QueryOpts{
			Limit: limit,
			Slug:  slug,
		})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No lesson runs recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-24s  %-8s  %-7s  %-7s  %-12s  %s\n",
			"ID", "Timestamp", "Topic", "Modules", "Quality", "AI/FB", "Duration", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range runs {
			ok := "✓"
			if !r.Passed {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-24s  %3d/%-4d  %7.2f  %3d/%-3d  %10.1fs  %s\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(r.Topic, 24),
				r.ModulesSucceeded,
				r.ModulesTotal,
				r.QualityScore,
				r.AICalls,
				r.FallbackCalls,
				float64(r.DurationMs)/1000,
				ok,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().Int("limit", 50, "Maximum number of runs to show")
	runsCmd.Flags().String("slug", "", "Filter by topic slug")
}
