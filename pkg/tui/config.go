package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/config"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Group Id", "group"),
						huh.NewOption("Set Subgroup", "subgroup"),
						huh.NewOption("Set Accent Color (Theme)", "theme"),
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
		case "group":
			err = runSetGroupTUI(cfg)
		case "subgroup":
			err = runSetSubgroupTUI(cfg)
		case "theme":
			err = runSetThemeTUI(cfg)
		case "view":
			fmt.Printf("Group id: %d\nSubgroup: %d\nAccent color: %s\n", cfg.GroupID, cfg.Subgroup, cfg.AccentColor)
		}
		if err != nil {
			return err
		}
	}
}

func runSetGroupTUI(cfg *config.AppConfig) error {
	value := ""
	if cfg.GroupID != 0 {
		value = strconv.Itoa(cfg.GroupID)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Group id").
				Description("The numeric id from the ssau.ru/rasp page URL (groupId=...).").
				Value(&value).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("group id must be a positive number")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.GroupID, _ = strconv.Atoi(value)
	return config.Save(cfg)
}

func runSetSubgroupTUI(cfg *config.AppConfig) error {
	value := ""
	if cfg.Subgroup != 0 {
		value = strconv.Itoa(cfg.Subgroup)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subgroup").
				Description("Leave empty to see lessons of every subgroup.").
				Value(&value).
				Validate(validateNumber),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Subgroup, _ = strconv.Atoi(value)
	return config.Save(cfg)
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	value := cfg.AccentColor

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Accent color").
				Description("An ANSI 256 color code, e.g. 39 for blue or 99 for purple.").
				Value(&value),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = value
	return config.Save(cfg)
}
