// Package setup is the interactive settings editor behind
// `waybar-manager config`: pick the operating mode, the preferred
// monitor, and (in multiple mode) which monitors get a bar at all.
package setup

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/settings"
)

type step int

const (
	stepMode step = iota
	stepPreferred
	stepSecondaries
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Confirm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Confirm, k.Quit}}
}

var defaultKeys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "abort")),
}

// Model is the editor state. Saved() reports whether the user confirmed
// the final step; an abort leaves the persisted settings untouched.
type Model struct {
	monitors []compositor.Monitor
	result   settings.Settings

	step         step
	cursor       int
	preferredIdx int
	included     map[int]bool

	keys keyMap
	help help.Model

	saved bool
}

// New builds the editor over the currently connected monitors, seeded
// with the persisted settings.
func New(monitors []compositor.Monitor, current settings.Settings) Model {
	included := make(map[int]bool, len(monitors))
	for i := range monitors {
		included[i] = true
	}
	cursor := 0
	if current.Mode == settings.ModeSingle {
		cursor = 1
	}
	return Model{
		monitors: monitors,
		result:   current,
		cursor:   cursor,
		included: included,
		keys:     defaultKeys,
		help:     help.New(),
	}
}

// Saved reports whether the user confirmed the last step.
func (m Model) Saved() bool { return m.saved }

// Result returns the edited settings; meaningful only when Saved.
func (m Model) Result() settings.Settings { return m.result }

func (m Model) Init() tea.Cmd { return nil }
