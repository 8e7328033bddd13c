package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F87D7")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

func (m Model) View() string {
	var b strings.Builder

	switch m.step {
	case stepMode:
		b.WriteString(titleStyle.Render("How should waybar run?"))
		b.WriteString("\n\n")
		modes := []string{
			"Multiple monitors — full bar on the main one, simple on the rest",
			"Single monitor — one full bar on the preferred monitor only",
		}
		for i, label := range modes {
			b.WriteString(m.row(i, label, ""))
		}

	case stepPreferred:
		b.WriteString(titleStyle.Render("Pick the main monitor (full bar)"))
		b.WriteString("\n\n")
		for i, mon := range m.monitors {
			b.WriteString(m.row(i, mon.Name, ""))
		}

	case stepSecondaries:
		b.WriteString(titleStyle.Render("Pick the monitors that get a bar"))
		b.WriteString("\n\n")
		for i, mon := range m.monitors {
			badge := "[ ]"
			if i == m.preferredIdx {
				badge = "[*]"
			} else if m.included[i] {
				badge = "[x]"
			}
			suffix := ""
			if i == m.preferredIdx {
				suffix = mutedStyle.Render(" (main)")
			}
			b.WriteString(m.row(i, badgeStyle.Render(badge)+" "+mon.Name, suffix))
		}
	}

	if m.result.Mode != "" {
		b.WriteString("\n" + mutedStyle.Render("mode: "+m.result.Mode))
		if m.result.PreferredMonitor != "" && m.step == stepSecondaries {
			b.WriteString(mutedStyle.Render(", main: " + m.result.PreferredMonitor))
		}
	}

	b.WriteString("\n\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) row(i int, label, suffix string) string {
	if i == m.cursor {
		return cursorStyle.Render("> "+label) + suffix + "\n"
	}
	return fmt.Sprintf("  %s%s\n", label, suffix)
}
