package cmd

import (
	"fmt"
	"strings"

	"slotwise/pkg/config"
	"slotwise/pkg/timetable"
	"slotwise/pkg/tui"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick the courses for your personal schedule",
	Long: `Launch the interactive course picker, or set the selection directly with
--courses. The confirmed selection is saved and reused by view and export.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clear, _ := cmd.Flags().GetBool("clear")
		if clear {
			if err := config.ClearSelection(); err != nil {
				return err
			}
			fmt.Println("Saved course selection cleared.")
			return nil
		}

		coursesFlag, _ := cmd.Flags().GetString("courses")
		if coursesFlag == "" {
			return tui.RunSelectTUI(sourceFlag(cmd))
		}

		// Non-interactive path: validate the names against the catalog
		s, err := tui.LoadSession(sourceFlag(cmd))
		if err != nil {
			return err
		}

		catalog := timetable.BuildCatalog(s.Rows, s.Slots)
		known := make(map[string]bool, len(catalog))
		for _, name := range catalog {
			known[name] = true
		}

		var selected []string
		for _, name := range strings.Split(coursesFlag, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if !known[name] {
				return fmt.Errorf("unknown course %q (run 'slotwise courses' to see the catalog)", name)
			}
			selected = append(selected, name)
		}
		if len(selected) == 0 {
			return fmt.Errorf("no courses given")
		}

		s.Cfg.SelectedCourses = selected
		if err := config.Save(s.Cfg); err != nil {
			return err
		}

		fmt.Printf("Saved %d selected courses.\n", len(selected))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)

	selectCmd.Flags().StringP("courses", "c", "", "Comma-separated course names to select non-interactively")
	selectCmd.Flags().Bool("clear", false, "Clear the saved selection")
}
