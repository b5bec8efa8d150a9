package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/engine"
	"taskquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, level and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			act, err := svc.ActivityCheck(ctx)
			if err != nil {
				return err
			}

			if class != "" {
				c, ok := engine.ParseCharacterClass(class)
				if !ok {
					return fmt.Errorf("invalid class %q (warrior|mage|rogue|paladin)", class)
				}
				if err := svc.SetCharacterClass(ctx, c); err != nil {
					return err
				}
			}

			p, err := svc.ProfileRepo().Get(ctx)
			if err != nil {
				return err
			}

			required := engine.RequiredXP(p.Level)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Profile"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Class", fmt.Sprintf("%s %s", p.CharacterClass, ui.Muted.Render(engine.CharacterClass(p.CharacterClass).Description()))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d / %d (%d to next level)", p.XP, required, required-p.XP)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s), best %d", ui.IconFire, p.CurrentStreak, p.LongestStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks completed", p.TotalTasksCompleted))

			active, err := svc.TaskRepo().CountActive(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Open tasks", active))

			if act.NewQuests > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d new daily quest(s), see: tq quests\n", ui.Good.Render(ui.IconQuest), act.NewQuests)
			}
			for _, title := range act.Unlocked {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Achievement unlocked: %s\n", ui.Gold.Render(ui.IconTrophy), title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Set character class (warrior|mage|rogue|paladin)")

	return cmd
}
