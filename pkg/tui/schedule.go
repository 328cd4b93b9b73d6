package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"slotwise/pkg/config"
	"slotwise/pkg/exporter"
	"slotwise/pkg/timetable"
	"slotwise/pkg/view"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Session bundles everything a flow needs after ingestion. The cmd layer
// shares it, so non-interactive commands load exactly the same way.
type Session struct {
	Cfg   *config.AppConfig
	Rows  []timetable.Row
	Slots []timetable.Slot
}

// LoadSession resolves the timetable source (explicit flag first, then the
// configured default), loads the rows behind a spinner, and picks the slot
// layout.
func LoadSession(source string) (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if source == "" {
		source = cfg.DefaultSource
	}
	if source == "" {
		return nil, fmt.Errorf("no timetable source given (use -f or set a default via 'slotwise settings')")
	}

	slots := timetable.DefaultSlots()
	if cfg.SlotLayoutPath != "" {
		slots, err = timetable.LoadSlots(cfg.SlotLayoutPath)
		if err != nil {
			return nil, err
		}
	}

	var rows []timetable.Row
	var loadErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Loading timetable from %s...", source)).
		Action(func() {
			rows, loadErr = timetable.LoadRows(source)
		}).
		Run()
	if loadErr != nil {
		return nil, fmt.Errorf("failed to load timetable: %w", loadErr)
	}

	return &Session{Cfg: cfg, Rows: rows, Slots: slots}, nil
}

// Assemble builds the schedule for the session's saved selection and
// display policies.
func (s *Session) Assemble() (timetable.ScheduleMap, error) {
	return timetable.Assemble(s.Rows, s.Slots, s.Cfg.SelectedCourses, timetable.Options{
		ShowAssessmentRooms: s.Cfg.ShowAssessmentRooms,
	})
}

// RunSelectTUI runs the course selection flow: catalog multiselect with the
// saved selection pre-checked, then persists the confirmed set.
func RunSelectTUI(source string) error {
	s, err := LoadSession(source)
	if err != nil {
		return err
	}

	catalog := timetable.BuildCatalog(s.Rows, s.Slots)
	if len(catalog) == 0 {
		fmt.Println(errorStyle.Render("No selectable courses found in this timetable!"))
		return nil
	}

	saved := make(map[string]bool)
	for _, name := range s.Cfg.SelectedCourses {
		saved[name] = true
	}

	var options []huh.Option[string]
	for _, name := range catalog {
		opt := huh.NewOption(name, name)
		if saved[name] {
			opt = opt.Selected(true)
		}
		options = append(options, opt)
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select your courses").
				Description(fmt.Sprintf("%d courses found. Space = toggle, Enter = confirm. Start typing to filter.", len(catalog))).
				Options(options...).
				Value(&selected).
				Filterable(true).
				Height(14),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if len(selected) == 0 {
		fmt.Println(errorStyle.Render("Please select at least one course."))
		return nil
	}

	s.Cfg.SelectedCourses = selected
	if err := config.Save(s.Cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d selected courses.\n", len(selected))))

	var browse bool
	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Browse your schedule now?").
				Value(&browse).
				Affirmative("Browse").
				Negative("Done"),
		),
	).WithTheme(GetTheme())

	if err := confirm.Run(); err != nil {
		return err
	}
	if browse {
		return runBrowser(s)
	}
	return nil
}

// RunScheduleTUI assembles the schedule for the saved selection and opens
// the week/month browser.
func RunScheduleTUI(source string) error {
	s, err := LoadSession(source)
	if err != nil {
		return err
	}

	if len(s.Cfg.SelectedCourses) == 0 {
		fmt.Println(errorStyle.Render("No courses selected yet."))
		fmt.Println("Pick your courses first — launching the selection screen.")
		return RunSelectTUI(source)
	}

	return runBrowser(s)
}

func runBrowser(s *Session) error {
	schedule, err := s.Assemble()
	if err != nil {
		return err
	}

	if schedule.EventCount() == 0 {
		// Valid selection, nothing matched. Not an error, but say so plainly.
		fmt.Println(dimStyle.Render("Your selection matched no events in this timetable."))
		return nil
	}

	caser := cases.Title(language.English)
	mode := view.ModeWeek
	anchor := time.Now()

	for {
		fmt.Println(RenderWindow(schedule, s.Slots, mode, anchor))

		other := view.ModeMonth
		if mode == view.ModeMonth {
			other = view.ModeWeek
		}

		var action string
		nav := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(fmt.Sprintf("%s View", caser.String(string(mode)))).
					Options(
						huh.NewOption(fmt.Sprintf("Next %s ▶", mode), "next"),
						huh.NewOption(fmt.Sprintf("◀ Previous %s", mode), "prev"),
						huh.NewOption("Jump to Today", "today"),
						huh.NewOption(fmt.Sprintf("Switch to %s View", caser.String(string(other))), "switch"),
						huh.NewOption("💾 Export", "export"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := nav.Run(); err != nil {
			return err
		}

		switch action {
		case "next":
			anchor = view.Step(mode, anchor, 1)
		case "prev":
			anchor = view.Step(mode, anchor, -1)
		case "today":
			anchor = time.Now()
		case "switch":
			mode = other
		case "export":
			if err := exportSchedule(s, schedule); err != nil {
				fmt.Println(errorStyle.Render(fmt.Sprintf("Export failed: %v", err)))
			}
		case "back":
			return nil
		}
	}
}

// RunExportTUI assembles the schedule for the saved selection and runs the
// export form directly.
func RunExportTUI(source string) error {
	s, err := LoadSession(source)
	if err != nil {
		return err
	}

	schedule, err := s.Assemble()
	if err != nil {
		return err
	}
	return exportSchedule(s, schedule)
}

func exportSchedule(s *Session, schedule timetable.ScheduleMap) error {
	var format string
	outputFile := "my_timetable.csv"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Export format").
				Options(
					huh.NewOption("Calendar import CSV (Google Calendar)", "gcal"),
					huh.NewOption("Simple grid CSV", "grid"),
					huh.NewOption("ICS calendar feed", "ics"),
				).
				Value(&format),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if format == "ics" && !strings.HasSuffix(outputFile, ".ics") {
		outputFile = strings.TrimSuffix(outputFile, ".csv") + ".ics"
	}

	file, err := os.Create(outputFile)
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
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✨ Exported %d events to %s\n", schedule.EventCount(), outputFile)))
	return nil
}
