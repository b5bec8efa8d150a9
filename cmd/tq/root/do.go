package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			before, _ := svc.TaskRepo().Get(ctx, id)
			res, err := svc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}

			name := fmt.Sprintf("#%d", res.TaskID)
			if before != nil {
				name = fmt.Sprintf("#%d %s", res.TaskID, before.Title)
			}
			if res.AlreadyCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Muted.Render(ui.IconDone+" Already done"), name)
				return nil
			}

			line := fmt.Sprintf("%s %s %s", ui.Good.Render(ui.IconDone+" Completed"), name, ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
			fmt.Fprintln(cmd.OutOrStdout(), line)
			if res.Recurring && res.NextDue != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s next due %s\n", ui.Muted.Render(ui.IconLoop), ui.Muted.Render(res.NextDue.Format("Mon Jan 2")))
			}
			for _, title := range res.QuestsCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Quest complete: %s\n", ui.Good.Render(ui.IconQuest), title)
			}
			if res.QuestXP > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Gold.Render(fmt.Sprintf("+%d quest XP", res.QuestXP)))
			}
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d → %d\n", ui.BadgeLevelUp, ui.Key.Render("Level"), res.LevelBefore, res.LevelAfter)
			}
			for _, title := range res.Unlocked {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Achievement unlocked: %s\n", ui.Gold.Render(ui.IconTrophy), title)
			}
			return nil
		},
	}

	return cmd
}
