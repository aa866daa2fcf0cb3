package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/config"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ssau-schedule configuration",
	Long:  "View or edit your local configuration settings (group id, subgroup, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setGroup, _ := cmd.Flags().GetInt("set-group")
		setSubgroup, _ := cmd.Flags().GetInt("set-subgroup")

		if setGroup > 0 || setSubgroup > 0 {
			if setGroup > 0 {
				cfg.GroupID = setGroup
			}
			if setSubgroup > 0 {
				cfg.Subgroup = setSubgroup
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("Saved: group id %d, subgroup %d\n", cfg.GroupID, cfg.Subgroup)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().Int("set-group", 0, "Save this group id as the default")
	configCmd.Flags().Int("set-subgroup", 0, "Save this subgroup as the default")
}
