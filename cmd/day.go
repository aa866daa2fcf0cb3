package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/config"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/dates"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/scraper"
)

var dayCmd = &cobra.Command{
	Use:   "day [phrase]",
	Short: "Show the schedule for a day",
	Long: `Show the schedule for the day named by a free-text phrase ("сегодня",
"завтра", "в пятницу", "через 2 недели") or by an explicit --date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := resolveGroupID(cmd)
		if err != nil {
			return err
		}

		date := time.Now()
		if explicit, _ := cmd.Flags().GetString("date"); explicit != "" {
			date, err = time.Parse("2006-01-02", explicit)
			if err != nil {
				return fmt.Errorf("invalid --date, want YYYY-MM-DD: %w", err)
			}
		} else if len(args) > 0 {
			date, err = dates.Resolve(strings.Join(args, " "), time.Now())
			if err != nil {
				return fmt.Errorf("could not understand the date phrase: %w", err)
			}
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
			return fetchErr
		}

		fmt.Println(schedule.RenderDay(day))
		return nil
	},
}

// resolveGroupID takes the group id from the flag, falling back to the
// saved configuration.
func resolveGroupID(cmd *cobra.Command) (int, error) {
	groupID, _ := cmd.Flags().GetInt("group")
	if groupID > 0 {
		return groupID, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}
	if cfg.GroupID <= 0 {
		return 0, fmt.Errorf("no group id given; pass --group or save one with 'ssau-schedule config'")
	}
	return cfg.GroupID, nil
}

func init() {
	rootCmd.AddCommand(dayCmd)

	dayCmd.Flags().IntP("group", "g", 0, "Group id (falls back to the saved config)")
	dayCmd.Flags().StringP("date", "d", "", "Explicit date (YYYY-MM-DD) instead of a phrase")
}
