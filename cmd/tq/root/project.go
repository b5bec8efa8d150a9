package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"proj"},
		Short:   "Manage projects",
	}
	cmd.AddCommand(newProjectAddCmd(), newProjectListCmd(), newProjectDoneCmd())
	return cmd
}

func newProjectAddCmd() *cobra.Command {
	var description string
	var color string
	var deadline string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			var dl *time.Time
			if deadline != "" {
				d, err := parseDueDate(deadline)
				if err != nil {
					return err
				}
				dl = &d
			}
			id, err := svc.CreateProject(ctx, args[0], description, color, dl)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Good.Render(ui.IconBox+" Project added"), id, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "D", "", "Project description")
	cmd.Flags().StringVar(&color, "color", "#4A90D9", "Display color (hex)")
	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")

	return cmd
}

func newProjectListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			projects, err := svc.ProjectRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBox, "Projects"))
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No projects."))
				return nil
			}
			for _, p := range projects {
				line := fmt.Sprintf("%s #%d %s", ui.DoneMark(p.IsCompleted), p.ID, p.Name)
				if p.Deadline != nil {
					line += " " + ui.Muted.Render("deadline "+p.Deadline.Format("Jan 2, 2006"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	return cmd
}

func newProjectDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a project completed",
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			p, err := svc.ProjectRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("project #%d not found", id)
			}
			p.IsCompleted = true
			if err := svc.ProjectRepo().Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Good.Render(ui.IconDone+" Project completed"), p.ID, p.Name)
			return nil
		},
	}

	return cmd
}
