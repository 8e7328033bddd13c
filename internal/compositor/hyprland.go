package compositor

import (
	"context"
	"regexp"
)

type hyprland struct{}

func (h *hyprland) Kind() Kind { return Hyprland }

var hyprlandMonitorRe = regexp.MustCompile(`(?m)^Monitor\s+(\S+)`)

func (h *hyprland) Monitors(ctx context.Context) ([]Monitor, error) {
	out, err := introspect(ctx, "hyprctl", "monitors")
	if err != nil {
		return nil, err
	}
	return parseHyprlandMonitors(out)
}

// parseHyprlandMonitors reads `hyprctl monitors` output; each output is
// introduced by a "Monitor <name> (ID n):" header line.
func parseHyprlandMonitors(out []byte) ([]Monitor, error) {
	var monitors []Monitor
	for _, m := range hyprlandMonitorRe.FindAllSubmatch(out, -1) {
		monitors = append(monitors, Monitor{Name: string(m[1]), Position: len(monitors)})
	}
	if len(monitors) == 0 {
		return nil, ErrNoOutputs
	}
	return monitors, nil
}
