package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage categories",
	}
	cmd.AddCommand(newCategoryAddCmd(), newCategoryListCmd())
	return cmd
}

func newCategoryAddCmd() *cobra.Command {
	var color string
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
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

			id, err := svc.CreateCategory(ctx, args[0], color, icon)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Good.Render(ui.IconFolder+" Category added"), id, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#808080", "Display color (hex)")
	cmd.Flags().StringVar(&icon, "icon", "folder", "Icon name")

	return cmd
}

func newCategoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cats, err := svc.CategoryRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconFolder, "Categories"))
			for _, c := range cats {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s %s\n", c.ID, c.Name, ui.Muted.Render(fmt.Sprintf("(%d active task(s))", c.TaskCount)))
			}
			return nil
		},
	}

	return cmd
}
