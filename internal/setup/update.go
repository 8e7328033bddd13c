package setup

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omynix/waybar-manager/internal/settings"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			// Only secondaries are toggleable; the preferred monitor
			// always keeps its bar.
			if m.step == stepSecondaries && m.cursor != m.preferredIdx {
				m.included[m.cursor] = !m.included[m.cursor]
			}
			return m, nil

		case key.Matches(msg, m.keys.Confirm):
			return m.confirm()
		}
	}
	return m, nil
}

func (m Model) listLen() int {
	if m.step == stepMode {
		return 2
	}
	return len(m.monitors)
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepMode:
		if m.cursor == 0 {
			m.result.Mode = settings.ModeMultiple
		} else {
			m.result.Mode = settings.ModeSingle
		}
		m.step = stepPreferred
		m.cursor = 0
		return m, nil

	case stepPreferred:
		m.preferredIdx = m.cursor
		m.result.PreferredMonitor = m.monitors[m.cursor].Name
		if m.result.Mode == settings.ModeSingle || len(m.monitors) == 1 {
			m.result.AvailableMonitors = []string{m.result.PreferredMonitor}
			m.saved = true
			return m, tea.Quit
		}
		m.step = stepSecondaries
		m.cursor = 0
		return m, nil

	default: // stepSecondaries
		names := make([]string, 0, len(m.monitors))
		for i, mon := range m.monitors {
			if i == m.preferredIdx || m.included[i] {
				names = append(names, mon.Name)
			}
		}
		m.result.AvailableMonitors = names
		m.saved = true
		return m, tea.Quit
	}
}
