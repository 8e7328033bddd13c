package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/settings"
	"github.com/omynix/waybar-manager/internal/setup"
	"github.com/omynix/waybar-manager/internal/ui"
)

func init() {
	configCmd := &cobra.Command{
		Use:           "config",
		Short:         "Interactively edit mode, preferred monitor and bar placement",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, err := settings.ResolveDirs()
			if err != nil {
				return err
			}
			comp, err := compositor.Detect()
			if err != nil {
				return err
			}
			monitors, err := comp.Monitors(cmd.Context())
			if err != nil {
				return err
			}
			current, err := settings.Load(dirs.SettingsPath())
			if err != nil {
				return err
			}

			program := tea.NewProgram(setup.New(monitors, current))
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("run settings editor: %w", err)
			}
			model, ok := final.(setup.Model)
			if !ok || !model.Saved() {
				ui.Dimf("aborted, settings unchanged")
				return nil
			}
			if err := settings.Save(dirs.SettingsPath(), model.Result()); err != nil {
				return err
			}
			ui.Okf("settings saved to %s", dirs.SettingsPath())
			return nil
		},
	}
	rootCmd.AddCommand(configCmd)
}
