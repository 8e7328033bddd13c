package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/fsutil"
	"github.com/omynix/waybar-manager/internal/settings"
	"github.com/omynix/waybar-manager/internal/template"
	"github.com/omynix/waybar-manager/internal/ui"
)

// starterTemplate is written for each kind that has no template yet. It
// parses as-is, so `launch` works immediately after `init`.
const starterTemplate = `[
  // TPL:FULL
  {
    "output": "` + template.Sentinel + `",
    "layer": "top",
    "position": "top",
    "modules-left": ["clock"],
    "modules-center": [],
    "modules-right": ["battery", "tray"]
  },
  // TPL:SIMPLE
  {
    "output": "` + template.Sentinel + `",
    "layer": "top",
    "position": "top",
    "modules-left": ["clock"],
    "modules-center": [],
    "modules-right": []
  }
]
`

func init() {
	initCmd := &cobra.Command{
		Use:           "init",
		Short:         "Create the default settings record and starter templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, err := settings.ResolveDirs()
			if err != nil {
				return err
			}
			return runInit(dirs)
		},
	}
	rootCmd.AddCommand(initCmd)
}

func runInit(dirs settings.Dirs) error {
	ui.Heading("Initializing waybar-manager")

	if _, err := os.Stat(dirs.SettingsPath()); err == nil {
		return fmt.Errorf("settings already exist at %s; edit them with 'waybar-manager config'", dirs.SettingsPath())
	}
	if err := settings.Save(dirs.SettingsPath(), settings.Default()); err != nil {
		return err
	}
	ui.Okf("wrote default settings to %s", dirs.SettingsPath())

	for _, kind := range compositor.Kinds() {
		path := dirs.TemplatePath(kind)
		if _, err := os.Stat(path); err == nil {
			ui.Dimf("template %s already exists, leaving it alone", path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := fsutil.WriteFileAtomic(path, []byte(starterTemplate), 0o644); err != nil {
			return err
		}
		ui.Okf("wrote starter template %s", path)
	}

	ui.Dimf("pick your monitors with 'waybar-manager config', then run 'waybar-manager launch'")
	return nil
}
