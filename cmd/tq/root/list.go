package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskquest/internal/storage"
	"taskquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var showAll bool
	var showDone bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
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

			var tasks []storage.Task
			switch {
			case showAll:
				tasks, err = svc.TaskRepo().ListAll(ctx)
			case showDone:
				tasks, err = svc.TaskRepo().ListCompleted(ctx)
			default:
				tasks, err = svc.TaskRepo().ListActive(ctx)
			}
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks. Add one with: tq add \"My first task\""))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Tasks"))
			now := time.Now()
			for i := range tasks {
				fmt.Fprintln(cmd.OutOrStdout(), taskLine(&tasks[i], now))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include completed tasks")
	cmd.Flags().BoolVar(&showDone, "done", false, "Only completed tasks")

	return cmd
}

func taskLine(t *storage.Task, now time.Time) string {
	line := fmt.Sprintf("%s #%d %s %s %s", ui.DoneMark(t.IsCompleted), t.ID, t.Title, ui.PriorityText(t.Priority), ui.Muted.Render(fmt.Sprintf("%d XP", t.XPReward)))
	if t.IsRecurring {
		line += " " + ui.Muted.Render(ui.IconLoop)
	}
	if t.DueDate != nil && !t.IsCompleted {
		due := t.DueDate.Format("Jan 2")
		if t.DueDate.Before(now) {
			line += " " + ui.Bad.Render("overdue "+due)
		} else {
			line += " " + ui.Muted.Render("due "+due)
		}
	}
	return line
}
