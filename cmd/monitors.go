package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/ui"
)

func init() {
	monitorsCmd := &cobra.Command{
		Use:           "monitors",
		Short:         "List the monitors the window manager reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := compositor.Detect()
			if err != nil {
				return err
			}
			return runMonitors(cmd.Context(), comp)
		},
	}
	rootCmd.AddCommand(monitorsCmd)
}

func runMonitors(ctx context.Context, comp compositor.Compositor) error {
	monitors, err := comp.Monitors(ctx)
	if err != nil {
		return err
	}
	ui.Heading("Connected monitors (" + comp.Kind().String() + ")")
	for _, m := range monitors {
		ui.Itemf("%d: %s", m.Position, m.Name)
	}
	return nil
}
