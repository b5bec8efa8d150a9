package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "Show achievements and progress",
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

			all, err := svc.AchievementRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Achievements"))
			unlocked := 0
			for _, a := range all {
				if a.IsUnlocked {
					unlocked++
					date := ""
					if a.UnlockedDate != nil {
						date = " " + ui.Muted.Render(a.UnlockedDate.Format("Jan 2, 2006"))
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s%s\n", a.Icon, ui.Gold.Render(a.Title), ui.Muted.Render(a.Description), date)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", a.Icon, ui.Muted.Render(a.Title), ui.Muted.Render(a.Description), ui.Key.Render(fmt.Sprintf("%d/%d", a.CurrentCount, a.RequiredCount)))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Unlocked", fmt.Sprintf("%d of %d", unlocked, len(all))))
			return nil
		},
	}

	return cmd
}
