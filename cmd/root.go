package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slotwise",
	Short: "A CLI and TUI for filtering institute timetables",
	Long: `slotwise takes the institute's spreadsheet-exported timetable, lets you
pick your courses, and builds a personal schedule you can browse by week
or month and export to a calendar-importable file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "Timetable source: a .csv/.xlsx/.html file or an http(s) URL")
}

// sourceFlag resolves the shared --file flag.
func sourceFlag(cmd *cobra.Command) string {
	source, _ := cmd.Flags().GetString("file")
	return source
}
