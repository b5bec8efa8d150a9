package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Show today's daily quests",
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

			quests, err := svc.TodayQuests(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Daily Quests"))
			if len(quests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No quests for today."))
				return nil
			}
			for _, q := range quests {
				line := fmt.Sprintf("%s %s %s", ui.DoneMark(q.IsCompleted), q.Title, ui.Gold.Render(fmt.Sprintf("+%d XP", q.XPReward)))
				fmt.Fprintln(cmd.OutOrStdout(), line)
				fmt.Fprintln(cmd.OutOrStdout(), "  "+ui.Muted.Render(q.Description))
			}
			return nil
		},
	}

	return cmd
}
