// Package settings owns the persisted user preferences and the on-disk
// layout the tool works against.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"

	"github.com/omynix/waybar-manager/internal/compositor"
)

// Dirs is the on-disk layout. Both roots can be relocated through the
// environment, which is how tests and packagers redirect state.
type Dirs struct {
	// ConfigDir is the waybar configuration root holding templates/,
	// generated/ and the shared stylesheet.
	ConfigDir string `env:"WAYBAR_MANAGER_CONFIG_DIR"`
	// DataDir holds the settings record.
	DataDir string `env:"WAYBAR_MANAGER_DATA_DIR"`
}

// ResolveDirs reads environment overrides and fills in the defaults
// under the user's home directory.
func ResolveDirs() (Dirs, error) {
	d := Dirs{}
	if err := env.Parse(&d); err != nil {
		return Dirs{}, fmt.Errorf("parse environment overrides: %w", err)
	}
	if d.ConfigDir == "" || d.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Dirs{}, fmt.Errorf("resolve home directory: %w", err)
		}
		if d.ConfigDir == "" {
			d.ConfigDir = filepath.Join(home, ".config", "waybar")
		}
		if d.DataDir == "" {
			d.DataDir = filepath.Join(home, ".local", "share", "waybar-manager")
		}
	}
	return d, nil
}

// TemplatePath is the template document for one compositor kind.
func (d Dirs) TemplatePath(kind compositor.Kind) string {
	return filepath.Join(d.ConfigDir, "templates", kind.String()+".jsonc")
}

// GeneratedDir holds the synthesized per-monitor configs.
func (d Dirs) GeneratedDir() string {
	return filepath.Join(d.ConfigDir, "generated")
}

// StylesheetPath is the single user-authored stylesheet shared by every
// bar instance. Never generated or mutated, only checked for presence.
func (d Dirs) StylesheetPath() string {
	return filepath.Join(d.ConfigDir, "style.css")
}

// SettingsPath is the persisted settings record.
func (d Dirs) SettingsPath() string {
	return filepath.Join(d.DataDir, "settings.yaml")
}
