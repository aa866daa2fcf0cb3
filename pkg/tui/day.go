package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/config"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/dates"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/scraper"
)

// RunDayTUI asks for a date phrase and prints the matching day's schedule.
func RunDayTUI() error {
	cfg, _ := config.Load()

	groupID := 0
	if cfg != nil {
		groupID = cfg.GroupID
	}
	if groupID == 0 {
		fmt.Println(errorStyle.Render("No group id configured yet, set one in Settings first."))
		return nil
	}

	var phrase string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which day?").
				Description(`Anything like "сегодня", "завтра", "в пятницу" or "через 2 недели".`).
				Value(&phrase).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("phrase cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	date, err := dates.Resolve(phrase, time.Now())
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not understand %q as a date.", phrase)))
		return nil
	}

	svc := scraper.NewService()
	var day schedule.Day
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching schedule for %s...", date.Format("02.01.2006"))).
		Action(func() {
			day, fetchErr = svc.GetDay(context.Background(), groupID, date)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("failed to fetch day: %w", fetchErr)
	}

	fmt.Println(schedule.RenderDay(day))
	return nil
}
