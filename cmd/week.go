package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/scraper"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/semester"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the full timetable grid for a week",
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := resolveGroupID(cmd)
		if err != nil {
			return err
		}

		number, _ := cmd.Flags().GetInt("week")
		if number == 0 {
			number = semester.WeekNumber(time.Now())
		}

		svc := scraper.NewService()
		var week schedule.Week
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching week %d for group %d...", number, groupID)).
			Action(func() {
				week, fetchErr = svc.GetWeek(context.Background(), groupID, number)
			}).
			Run()

		if fetchErr != nil {
			return fetchErr
		}

		fmt.Println(schedule.RenderWeek(week))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)

	weekCmd.Flags().IntP("group", "g", 0, "Group id (falls back to the saved config)")
	weekCmd.Flags().IntP("week", "w", 0, "Week number (defaults to the current week)")
}
