package tui

import (
	"fmt"
	"time"

	"slotwise/pkg/config"

	"github.com/charmbracelet/huh"
)

// RunSettingsTUI launches the interactive experience for managing configuration
func RunSettingsTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Settings").
					Options(
						huh.NewOption("Set Default Timetable Source", "source"),
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Assessment Room Display", "rooms"),
						huh.NewOption("Set Export Timezone", "timezone"),
						huh.NewOption("Set Slot Layout File", "slots"),
						huh.NewOption("Clear Saved Course Selection", "clear"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "source":
			err = runSetSourceTUI(cfg)
		case "theme":
			err = runSetThemeTUI(cfg)
		case "rooms":
			err = runSetRoomsTUI(cfg)
		case "timezone":
			err = runSetTimezoneTUI(cfg)
		case "slots":
			err = runSetSlotsTUI(cfg)
		case "clear":
			if err = config.ClearSelection(); err == nil {
				fmt.Println(accentStyle.Render("\n✅ Saved course selection cleared.\n"))
			}
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.slotwise.json) ---"))
			if cfg.DefaultSource == "" {
				fmt.Println("Default Source: Not set")
			} else {
				fmt.Printf("Default Source: %s\n", cfg.DefaultSource)
			}
			fmt.Printf("Selected Courses: %d\n", len(cfg.SelectedCourses))
			fmt.Printf("Assessment Rooms Shown: %v\n", cfg.ShowAssessmentRooms)
			fmt.Printf("Timezone: %s\n", cfg.Timezone)
			fmt.Printf("Slot Layout: %s\n", cfg.SlotLayoutPath)
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetSourceTUI(cfg *config.AppConfig) error {
	source := cfg.DefaultSource

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default timetable source").
				Description("A local .csv/.xlsx/.html file or an http(s) URL.").
				Value(&source),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultSource = source
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default source set to: %s\n", source)))
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick an accent color").
				Options(
					huh.NewOption("Pink (default)", "205"),
					huh.NewOption("Purple", "99"),
					huh.NewOption("Cyan", "86"),
					huh.NewOption("Orange", "214"),
					huh.NewOption("Green", "114"),
				).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(GetCustomTheme(selected).Focused.Title.Render("\n✅ Accent color updated!\n"))
	return nil
}

func runSetRoomsTUI(cfg *config.AppConfig) error {
	show := cfg.ShowAssessmentRooms

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show rooms on quiz and exam entries?").
				Description("By default assessments are shown without a venue.").
				Value(&show).
				Affirmative("Show").
				Negative("Hide"),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.ShowAssessmentRooms = show
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Assessment room display updated.\n"))
	return nil
}

func runSetTimezoneTUI(cfg *config.AppConfig) error {
	tz := cfg.Timezone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export timezone (IANA name)").
				Placeholder("Asia/Kolkata").
				Value(&tz).
				Validate(func(v string) error {
					if v == "" {
						return nil // Fall back to the default
					}
					if _, err := time.LoadLocation(v); err != nil {
						return fmt.Errorf("unknown timezone %q", v)
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Timezone = tz
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Timezone updated.\n"))
	return nil
}

func runSetSlotsTUI(cfg *config.AppConfig) error {
	path := cfg.SlotLayoutPath

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Slot layout YAML file").
				Description("Leave empty to use the built-in layout.").
				Value(&path),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SlotLayoutPath = path
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Slot layout updated.\n"))
	return nil
}
