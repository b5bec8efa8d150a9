package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "tq",
	Short:         "Gamified task tracker",
	Long:          "TaskQuest is a local-first CLI/TUI task tracker with RPG progression: XP, levels, streaks, daily quests and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newUndoCmd(),
		newListCmd(),
		newStatusCmd(),
		newQuestsCmd(),
		newAchievementsCmd(),
		newStatsCmd(),
		newCategoryCmd(),
		newProjectCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
