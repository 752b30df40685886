package mcl

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

var (
	// Colors (Nord-inspired)
	ColorGreen  = lipgloss.Color("#a3be8c")
	ColorCyan   = lipgloss.Color("#88c0d0")
	ColorBlue   = lipgloss.Color("#81a1c1")
	ColorPurple = lipgloss.Color("#b48ead")
	ColorRed    = lipgloss.Color("#bf616a")
	ColorGray   = lipgloss.Color("#4c566a")

	// Shared with the TUI
	ThemeColorPrimary   = ColorGreen
	ThemeColorSecondary = ColorCyan
	ThemeColorMuted     = ColorGray

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorPurple).
			Bold(true)

	StyleInfo = lipgloss.NewStyle().
			Foreground(ColorCyan)

	StyleDim = lipgloss.NewStyle().
			Foreground(ThemeColorMuted)

	StylePath = lipgloss.NewStyle().
			Foreground(ColorBlue)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ThemeColorPrimary).
			Bold(true)
)

func SuccessMsg(msg string) string {
	return StyleSuccess.Render("✓ ") + msg
}

func ErrorMsg(msg string) string {
	return StyleError.Render("✗ ") + msg
}

func WarnMsg(msg string) string {
	return StyleWarning.Render("! ") + msg
}

func InfoMsg(msg string) string {
	return StyleInfo.Render("• ") + msg
}

// ColorToTcell converts a lipgloss hex color to a tcell color.
func ColorToTcell(c lipgloss.Color) tcell.Color {
	return tcell.GetColor(string(c))
}
