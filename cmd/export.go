package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"slotwise/pkg/exporter"
	"slotwise/pkg/timetable"
	"slotwise/pkg/tui"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your schedule to a calendar-importable file",
	Long: `Assemble the schedule for your saved course selection and write it out.
Formats: gcal (flat calendar-import CSV), grid (one row per date), ics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")

		// Reject a bad format before anything touches the filesystem
		switch format {
		case "gcal", "grid", "ics":
		default:
			return fmt.Errorf("unknown format %q (want gcal, grid or ics)", format)
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
			fmt.Println("Your selection matched no events; nothing exported.")
			return nil
		}

		if format == "ics" && !strings.HasSuffix(output, ".ics") {
			output = strings.TrimSuffix(output, ".csv") + ".ics"
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		switch format {
		case "grid":
			err = exporter.WriteGridCSV(schedule, s.Slots, file)
		case "ics":
			err = exporter.GenerateICS(schedule, s.Slots, s.Cfg.Timezone, file)
		default:
			err = exporter.WriteCalendarCSV(schedule, s.Slots, file)
		}
		if err != nil {
			return fmt.Errorf("failed to generate export: %w", err)
		}

		fmt.Printf("Successfully exported %d events to %s\n", schedule.EventCount(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "my_timetable.csv", "Output file path")
	exportCmd.Flags().String("format", "gcal", "Export format: gcal, grid or ics")
}
