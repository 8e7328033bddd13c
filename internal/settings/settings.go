package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/omynix/waybar-manager/internal/fsutil"
)

// Bar operating modes.
const (
	ModeSingle   = "single"   // bar only on the preferred monitor
	ModeMultiple = "multiple" // bar on every connected monitor
)

// Settings is the small persisted preference record. The synthesis
// pipeline treats it as an immutable input for one run; it is rewritten
// only on explicit save (config editor, confirmed topology sync).
type Settings struct {
	PreferredMonitor  string   `yaml:"preferred_monitor"`
	AvailableMonitors []string `yaml:"available_monitors"`
	Mode              string   `yaml:"mode"`
}

// Default returns the record written by `waybar-manager init`.
func Default() Settings {
	return Settings{Mode: ModeMultiple}
}

// Load reads the settings record. A missing file yields the defaults
// without creating anything; `init` and `config` are the writers.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.Mode == "" {
		s.Mode = ModeMultiple
	}
	return s, nil
}

// Save persists the record, creating the data directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	raw, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	return fsutil.WriteFileAtomic(path, raw, 0o644)
}

// TopologyChanged reports whether the connected monitors no longer match
// what the record knows. In single mode only the preferred monitor
// matters; in multiple mode the known and connected sets must be equal.
func (s Settings) TopologyChanged(connected []string) bool {
	if s.Mode == ModeSingle {
		for _, name := range connected {
			if name == s.PreferredMonitor {
				return false
			}
		}
		return true
	}
	return !sameSet(s.AvailableMonitors, connected)
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, name := range a {
		seen[name] = true
	}
	for _, name := range b {
		if !seen[name] {
			return false
		}
	}
	return true
}
