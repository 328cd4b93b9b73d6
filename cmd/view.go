package cmd

import (
	"errors"
	"fmt"
	"time"

	"slotwise/pkg/timetable"
	"slotwise/pkg/tui"
	"slotwise/pkg/view"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print your schedule for a week or month",
	Long: `Assemble the schedule for your saved course selection and print the
requested window. Defaults to the current week.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		modeStr, _ := cmd.Flags().GetString("mode")
		mode := view.ModeWeek
		switch modeStr {
		case "week", "":
		case "month":
			mode = view.ModeMonth
		default:
			return fmt.Errorf("unknown view mode %q (want week or month)", modeStr)
		}

		anchor := time.Now()
		if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
			var err error
			anchor, err = time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", dateStr)
			}
		}

		s, err := tui.LoadSession(sourceFlag(cmd))
		if err != nil {
			return err
		}

		schedule, err := s.Assemble()
		if errors.Is(err, timetable.ErrEmptySelection) {
			return fmt.Errorf("no courses selected yet, run 'slotwise select' first")
		}
		if err != nil {
			return err
		}

		if schedule.EventCount() == 0 {
			fmt.Println("Your selection matched no events in this timetable.")
			return nil
		}

		fmt.Println(tui.RenderWindow(schedule, s.Slots, mode, anchor))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().StringP("mode", "m", "week", "View mode: week or month")
	viewCmd.Flags().StringP("date", "d", "", "Anchor date (YYYY-MM-DD), defaults to today")
}
