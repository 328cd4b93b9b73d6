package cmd

import (
	"fmt"

	"slotwise/pkg/timetable"
	"slotwise/pkg/tui"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the selectable courses found in the timetable",
	Long:  `Scan the timetable and print every distinct course identifier, marking the ones in your saved selection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := tui.LoadSession(sourceFlag(cmd))
		if err != nil {
			return err
		}

		catalog := timetable.BuildCatalog(s.Rows, s.Slots)
		if len(catalog) == 0 {
			return fmt.Errorf("no selectable courses found in this timetable")
		}

		selected := make(map[string]bool)
		for _, name := range s.Cfg.SelectedCourses {
			selected[name] = true
		}

		for _, name := range catalog {
			mark := " "
			if selected[name] {
				mark = "✓"
			}
			fmt.Printf(" [%s] %s\n", mark, name)
		}
		fmt.Printf("\n%d courses, %d selected\n", len(catalog), len(s.Cfg.SelectedCourses))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
