// Package cmd wires the waybar-manager command surface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/omynix/waybar-manager/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "waybar-manager",
	Short: "Per-monitor waybar configuration for niri, hyprland and mango",
	Long: `waybar-manager generates one waybar configuration per connected
monitor from a single JSONC template: the preferred monitor gets the
full bar, every other monitor a simple one. Run without a subcommand it
performs a launch.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLaunch(cmd.Context(), launchOptions{})
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		os.Exit(1)
	}
}
