package cmd

import (
	"slotwise/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to pick courses, browse your schedule by week or month, and export it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(sourceFlag(cmd))
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
