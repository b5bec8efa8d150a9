package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskquest/internal/engine"
	"taskquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var description string
	var priority string
	var categoryID int64
	var projectID int64
	var due string
	var estimate int
	var xp int
	var recur string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			in := engine.CreateTaskInput{
				Title:            args[0],
				Description:      description,
				Priority:         engine.ParsePriority(priority),
				CategoryID:       categoryID,
				EstimatedMinutes: estimate,
				XPReward:         xp,
			}
			if projectID > 0 {
				in.ProjectID = &projectID
			}
			if due != "" {
				d, err := parseDueDate(due)
				if err != nil {
					return err
				}
				in.DueDate = &d
			}
			if recur != "" {
				rt, ok := engine.ParseRecurringType(recur)
				if !ok {
					return fmt.Errorf("invalid recurrence %q (daily|weekly|monthly)", recur)
				}
				in.IsRecurring = true
				in.RecurringType = &rt
			}

			id, err := svc.CreateTask(ctx, in)
			if err != nil {
				return err
			}

			t, err := svc.TaskRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("%s #%d %s %s", ui.Good.Render(ui.IconPlus+" Added"), id, t.Title, ui.Muted.Render(fmt.Sprintf("(%d XP)", t.XPReward)))
			fmt.Fprintln(cmd.OutOrStdout(), line)
			if t.IsRecurring && t.RecurringType != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s repeats %s\n", ui.Muted.Render(ui.IconLoop), ui.Muted.Render(*t.RecurringType))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "D", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high|urgent)")
	cmd.Flags().Int64VarP(&categoryID, "category", "c", 1, "Category ID")
	cmd.Flags().Int64Var(&projectID, "project", 0, "Project ID")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD or YYYY-MM-DDTHH:MM)")
	cmd.Flags().IntVarP(&estimate, "estimate", "e", 0, "Estimated minutes")
	cmd.Flags().IntVar(&xp, "xp", 0, "XP reward override (0 = suggested)")
	cmd.Flags().StringVarP(&recur, "recur", "r", "", "Recurrence (daily|weekly|monthly)")

	return cmd
}

// parseDueDate accepts a date or a date with time; a bare date is due at
// end of that day so it still counts as on time all day.
func parseDueDate(input string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02T15:04", input, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return t.Add(24*time.Hour - time.Second), nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q (want YYYY-MM-DD or YYYY-MM-DDTHH:MM)", input)
}
