// Package ui holds the lipgloss styles and small print helpers shared by
// the command output.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")) // Green

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")) // Red

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")) // Pinkish
)

// Heading prints a dim rule followed by a styled section title.
func Heading(title string) {
	fmt.Println(dimStyle.Render(strings.Repeat("─", 33)))
	fmt.Println(headingStyle.Render(title))
}

// Okf prints a green check line.
func Okf(format string, a ...any) {
	fmt.Println(okStyle.Render("✓ ") + fmt.Sprintf(format, a...))
}

// Warnf prints an orange warning line.
func Warnf(format string, a ...any) {
	fmt.Println(warnStyle.Render("⚠ " + fmt.Sprintf(format, a...)))
}

// Errorf prints a red error line to stderr.
func Errorf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, errStyle.Render("✗ "+fmt.Sprintf(format, a...)))
}

// Itemf prints an indented list item.
func Itemf(format string, a ...any) {
	fmt.Println("  " + accentStyle.Render("- ") + fmt.Sprintf(format, a...))
}

// Dimf prints a de-emphasized line.
func Dimf(format string, a ...any) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, a...)))
}

// Accent renders inline emphasized text.
func Accent(s string) string { return accentStyle.Render(s) }

// Warn renders inline warning text.
func Warn(s string) string { return warnStyle.Render(s) }
