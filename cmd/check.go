package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/reconcile"
	"github.com/omynix/waybar-manager/internal/settings"
	"github.com/omynix/waybar-manager/internal/ui"
)

func init() {
	checkCmd := &cobra.Command{
		Use:           "check",
		Short:         "Dry run: report what launch would generate, writing nothing",
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
			return runCheck(cmd.Context(), comp, dirs)
		},
	}
	rootCmd.AddCommand(checkCmd)
}

func runCheck(ctx context.Context, comp compositor.Compositor, dirs settings.Dirs) error {
	ui.Heading("Checking waybar configuration")
	ui.Okf("window manager: %s", ui.Accent(comp.Kind().String()))

	monitors, err := comp.Monitors(ctx)
	if err != nil {
		return err
	}
	s, err := settings.Load(dirs.SettingsPath())
	if err != nil {
		return err
	}

	selected := selectMonitors(s, monitors)
	plan, assignments, fellBack, err := generate(selected, comp.Kind(), dirs, s, true)
	if err != nil {
		return err
	}
	if fellBack {
		ui.Warnf("preferred monitor %q not connected; %s would get the full bar", s.PreferredMonitor, selected[0].Name)
	}

	ui.Heading("Planned assignments")
	for _, a := range assignments {
		ui.Itemf("%s → %s", a.Monitor.Name, a.Variant)
	}
	ui.Heading("Planned file actions")
	for _, o := range plan.Outcomes {
		if o.Err != nil {
			ui.Errorf("%s: %v", o.FileName, o.Err)
			continue
		}
		ui.Itemf("%s: would be %s", o.FileName, o.Action)
	}
	ui.Okf("%d to write, %d unchanged, %d to delete",
		plan.Count(reconcile.Written), plan.Count(reconcile.Unchanged), plan.Count(reconcile.Deleted))
	return plan.Err()
}
