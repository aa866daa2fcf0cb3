package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/exporter"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/scraper"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/semester"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a range of weeks to an ICS file",
	Long:  `Export the timetable for a range of weeks to an ICS calendar file, optionally filtered to one subgroup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := resolveGroupID(cmd)
		if err != nil {
			return err
		}

		from, _ := cmd.Flags().GetInt("from")
		to, _ := cmd.Flags().GetInt("to")
		subgroup, _ := cmd.Flags().GetInt("subgroup")
		output, _ := cmd.Flags().GetString("output")

		if from == 0 {
			from = semester.WeekNumber(time.Now())
		}
		if to < from {
			to = from
		}

		svc := scraper.NewService()
		var weeks []schedule.Week
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting weeks %d-%d for group %d to %s...", from, to, groupID, output)).
			Action(func() {
				for number := from; number <= to; number++ {
					week, err := svc.GetWeek(context.Background(), groupID, number)
					if err != nil {
						fetchErr = fmt.Errorf("failed to fetch week %d: %w", number, err)
						return
					}
					if subgroup > 0 {
						week = exporter.FilterSubgroup(week, subgroup)
					}
					weeks = append(weeks, week)
				}
			}).
			Run()

		if fetchErr != nil {
			return fetchErr
		}

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.WriteICS(file, weeks); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported weeks %d-%d to %s\n", from, to, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntP("group", "g", 0, "Group id (falls back to the saved config)")
	exportCmd.Flags().Int("from", 0, "First week to export (defaults to the current week)")
	exportCmd.Flags().Int("to", 0, "Last week to export, inclusive (defaults to --from)")
	exportCmd.Flags().Int("subgroup", 0, "Keep only lessons of this subgroup")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
}
