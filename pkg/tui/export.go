package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/config"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/exporter"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/scraper"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/semester"
)

func validateNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

// RunExportTUI runs the interactive flow for exporting a range of weeks to an ICS file
func RunExportTUI() error {
	cfg, _ := config.Load()

	currentWeek := semester.WeekNumber(time.Now())
	group := ""
	subgroup := ""
	fromWeek := strconv.Itoa(currentWeek)
	toWeek := strconv.Itoa(currentWeek)
	outputFile := "schedule.ics"

	if cfg != nil && cfg.GroupID != 0 {
		group = strconv.Itoa(cfg.GroupID)
	}
	if cfg != nil && cfg.Subgroup != 0 {
		subgroup = strconv.Itoa(cfg.Subgroup)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Group id").
				Value(&group).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(s); err != nil {
						return fmt.Errorf("group id must be a number")
					}
					return nil
				}),

			huh.NewInput().
				Title("Subgroup (optional)").
				Value(&subgroup).
				Validate(validateNumber),

			huh.NewInput().
				Title("First week").
				Value(&fromWeek).
				Validate(validateNumber),

			huh.NewInput().
				Title("Last week (inclusive)").
				Value(&toWeek).
				Validate(validateNumber),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	groupID, _ := strconv.Atoi(group)
	from, _ := strconv.Atoi(fromWeek)
	to, _ := strconv.Atoi(toWeek)
	if from < 1 {
		from = currentWeek
	}
	if to < from {
		to = from
	}

	svc := scraper.NewService()
	var weeks []schedule.Week
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching weeks %d-%d for group %d...", from, to, groupID)).
		Action(func() {
			for number := from; number <= to; number++ {
				week, err := svc.GetWeek(context.Background(), groupID, number)
				if err != nil {
					fetchErr = fmt.Errorf("failed to fetch week %d: %w", number, err)
					return
				}
				if subgroup != "" {
					sub, _ := strconv.Atoi(subgroup)
					week = exporter.FilterSubgroup(week, sub)
				}
				weeks = append(weeks, week)
			}
		}).
		Run()

	if fetchErr != nil {
		return fetchErr
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.WriteICS(file, weeks); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported weeks %d-%d to %s", from, to, outputFile)))
	return nil
}
