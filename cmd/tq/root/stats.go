package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show productivity statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.ActivityCheck(ctx); err != nil {
				return err
			}

			stats, history, err := svc.Statistics(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, "Productivity"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Score", fmt.Sprintf("%d / 100", stats.Score)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completed today", stats.CompletedToday))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("This week", stats.CompletedThisWeek))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("This month", stats.CompletedThisMonth))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("On time", fmt.Sprintf("%d%%", stats.OnTimePercentage)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Avg XP per task", stats.AverageXPPerTask))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Last 7 days"))
			max := 0
			for _, d := range history {
				if d.Count > max {
					max = d.Count
				}
			}
			for _, d := range history {
				bar := ""
				if max > 0 {
					bar = strings.Repeat("█", d.Count*20/max)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d\n", ui.Key.Render(d.Label), ui.Good.Render(bar), d.Count)
			}
			return nil
		},
	}

	return cmd
}
