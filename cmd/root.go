package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ssau-schedule",
	Short: "A CLI and voice-assistant backend for SSAU timetables",
	Long: `ssau-schedule scrapes the Samara University timetable page for a study
group, answers "what do I have on Friday" style questions, exports weeks to
an .ics calendar file and serves the Yandex Alice webhook.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
