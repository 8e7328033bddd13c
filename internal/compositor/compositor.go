// Package compositor identifies the running Wayland compositor and
// enumerates its monitor topology through the compositor's own
// introspection channel (hyprctl, niri msg, mmsg).
package compositor

import "context"

// Kind is the closed set of supported compositors. It selects which
// template file is loaded and the naming convention of generated files.
type Kind int

const (
	Niri Kind = iota
	Hyprland
	Mango
)

func (k Kind) String() string {
	switch k {
	case Niri:
		return "niri"
	case Hyprland:
		return "hyprland"
	case Mango:
		return "mango"
	default:
		return "unknown"
	}
}

// Kinds lists every supported compositor.
func Kinds() []Kind {
	return []Kind{Niri, Hyprland, Mango}
}

// Monitor is one connected output. Name is the connector identifier
// (e.g. "eDP-1"); Position is the enumeration order reported by the
// compositor. Names are unique within one enumeration snapshot.
type Monitor struct {
	Name     string
	Position int
}

// Compositor is the capability surface the synthesis pipeline needs
// from a window manager: its identity and its current outputs.
// Monitors is re-queried on every run; topology is never cached.
type Compositor interface {
	Kind() Kind
	Monitors(ctx context.Context) ([]Monitor, error)
}
