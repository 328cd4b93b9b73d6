package cmd

import (
	"slotwise/pkg/tui"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage slotwise configuration",
	Long:  "View or edit your local configuration (default source, display policies, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunSettingsTUI()
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
