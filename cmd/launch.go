package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/omynix/waybar-manager/internal/bar"
	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/reconcile"
	"github.com/omynix/waybar-manager/internal/settings"
	"github.com/omynix/waybar-manager/internal/synth"
	"github.com/omynix/waybar-manager/internal/template"
	"github.com/omynix/waybar-manager/internal/ui"
)

type launchOptions struct {
	Verbose     bool
	ForceUpdate bool
}

func init() {
	opts := launchOptions{}
	launchCmd := &cobra.Command{
		Use:           "launch",
		Short:         "Generate per-monitor configs and start waybar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd.Context(), opts)
		},
	}
	launchCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show every decision (assignments, per-file outcomes)")
	launchCmd.Flags().BoolVarP(&opts.ForceUpdate, "force-update", "f", false, "Update persisted settings without asking (for startup scripts)")
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(ctx context.Context, opts launchOptions) error {
	dirs, err := settings.ResolveDirs()
	if err != nil {
		return err
	}
	comp, err := compositor.Detect()
	if err != nil {
		return err
	}
	return launchRun(ctx, comp, dirs, opts, promptConfirm)
}

// launchRun is the full launch pipeline: enumerate, sync settings,
// synthesize, reconcile, restart waybar. The confirm callback asks the
// user to approve a settings update; it is user-paced (no timeout) and
// bypassed entirely by --force-update.
func launchRun(ctx context.Context, comp compositor.Compositor, dirs settings.Dirs, opts launchOptions, confirm func(string) bool) error {
	ui.Heading("Starting waybar setup")
	ui.Okf("window manager: %s", ui.Accent(comp.Kind().String()))

	monitors, err := comp.Monitors(ctx)
	if err != nil {
		return fmt.Errorf("enumerate monitors: %w", err)
	}
	ui.Okf("monitors detected: %d", len(monitors))

	s, err := settings.Load(dirs.SettingsPath())
	if err != nil {
		return err
	}
	names := monitorNames(monitors)
	if opts.Verbose {
		printSystemState(s, names)
	}

	if s.TopologyChanged(names) {
		if s.Mode == settings.ModeSingle {
			ui.Warnf("the preferred monitor %s is not connected", s.PreferredMonitor)
			ui.Dimf("run 'waybar-manager config' to reconfigure")
		} else if opts.ForceUpdate || confirm("Monitor topology changed. Update settings with the detected monitors?") {
			s.AvailableMonitors = names
			if err := settings.Save(dirs.SettingsPath(), s); err != nil {
				return err
			}
			ui.Okf("settings synchronized")
		} else {
			ui.Warnf("settings are out of date")
		}
	}

	selected := selectMonitors(s, monitors)
	report, assignments, fellBack, err := generate(selected, comp.Kind(), dirs, s, false)
	if err != nil {
		return err
	}
	if fellBack {
		ui.Warnf("preferred monitor %q not connected; %s gets the full bar", s.PreferredMonitor, selected[0].Name)
	}
	printAssignments(assignments, opts.Verbose)
	printReport(report, opts.Verbose)

	if !bar.StylesheetExists(dirs.StylesheetPath()) {
		ui.Warnf("stylesheet %s not found; waybar will use its defaults", dirs.StylesheetPath())
	}

	if bar.Running() {
		ui.Dimf("stopping running waybar instances")
		_ = bar.StopAll()
		time.Sleep(500 * time.Millisecond)
	}
	for _, a := range assignments {
		path := filepath.Join(dirs.GeneratedDir(), synth.FileName(comp.Kind(), a.Monitor.Name, a.Variant))
		if err := bar.Spawn(path, dirs.StylesheetPath()); err != nil {
			ui.Warnf("%v", err)
		} else {
			ui.Okf("waybar (%s) started on %s", a.Variant, ui.Accent(a.Monitor.Name))
		}
	}

	if err := report.Err(); err != nil {
		return err
	}
	ui.Okf("waybar setup complete")
	return nil
}

// generate loads and parses the template for kind, assigns variants to
// the given monitors, synthesizes the per-monitor configs and reconciles
// the generated directory. With dryRun the reconciler only plans.
func generate(monitors []compositor.Monitor, kind compositor.Kind, dirs settings.Dirs, s settings.Settings, dryRun bool) (*reconcile.Report, []synth.Assignment, bool, error) {
	raw, err := os.ReadFile(dirs.TemplatePath(kind))
	if err != nil {
		return nil, nil, false, fmt.Errorf("read template for %s: %w", kind, err)
	}
	doc, err := template.Parse(raw)
	if err != nil {
		return nil, nil, false, fmt.Errorf("template %s: %w", dirs.TemplatePath(kind), err)
	}

	assignments, fellBack, err := synth.Assign(monitors, s.PreferredMonitor)
	if err != nil {
		return nil, nil, false, err
	}
	configs, err := synth.SynthesizeAll(doc, assignments, kind)
	if err != nil {
		return nil, nil, false, err
	}

	if dryRun {
		return reconcile.Plan(dirs.GeneratedDir(), kind, configs), assignments, fellBack, nil
	}
	return reconcile.Reconcile(dirs.GeneratedDir(), kind, configs), assignments, fellBack, nil
}

// selectMonitors narrows the enumeration to the monitors that get a bar.
// Multiple mode covers everything; single mode only the preferred
// monitor, falling back to the first one when it is not connected.
func selectMonitors(s settings.Settings, monitors []compositor.Monitor) []compositor.Monitor {
	if s.Mode != settings.ModeSingle {
		return monitors
	}
	for _, m := range monitors {
		if m.Name == s.PreferredMonitor {
			return []compositor.Monitor{m}
		}
	}
	return monitors[:1]
}

func monitorNames(monitors []compositor.Monitor) []string {
	names := make([]string, len(monitors))
	for i, m := range monitors {
		names[i] = m.Name
	}
	return names
}

func printSystemState(s settings.Settings, connected []string) {
	ui.Heading("Configured monitors")
	if len(s.AvailableMonitors) == 0 {
		ui.Dimf("  (none configured)")
	}
	for _, name := range s.AvailableMonitors {
		ui.Itemf("%s", name)
	}
	ui.Heading("Connected monitors")
	for _, name := range connected {
		ui.Itemf("%s", name)
	}
	if s.PreferredMonitor != "" {
		ui.Okf("preferred monitor: %s", ui.Accent(s.PreferredMonitor))
	}
}

func printAssignments(assignments []synth.Assignment, verbose bool) {
	if !verbose {
		return
	}
	ui.Heading("Assignments")
	for _, a := range assignments {
		ui.Itemf("%s → %s", a.Monitor.Name, strings.ToUpper(a.Variant.String()))
	}
}

func printReport(report *reconcile.Report, verbose bool) {
	if verbose {
		for _, o := range report.Outcomes {
			if o.Err != nil {
				ui.Errorf("%s: %v", o.FileName, o.Err)
				continue
			}
			ui.Itemf("%s: %s", o.FileName, o.Action)
		}
	} else {
		for _, o := range report.Failures() {
			ui.Errorf("%s: %v", o.FileName, o.Err)
		}
	}
	ui.Okf("%d written, %d unchanged, %d deleted, %d failed",
		report.Count(reconcile.Written), report.Count(reconcile.Unchanged),
		report.Count(reconcile.Deleted), report.Count(reconcile.Failed))
}

// promptConfirm asks a yes/no question on stdin. User-paced: it blocks
// until an answer arrives.
func promptConfirm(question string) bool {
	fmt.Print(ui.Warn(question) + " [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
