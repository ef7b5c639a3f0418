// Package styles holds the lipgloss styles used by hgline and parses
// user-supplied style strings.
package styles

import (
	"charm.land/lipgloss/v2"
)

// ColorBarText is the foreground of the light status bar themes
var ColorBarText = lipgloss.Color("#FAFAFA")

var (
	// statusBarPurple is the default status bar background
	statusBarPurple = lipgloss.NewStyle().
			Foreground(ColorBarText).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	statusBarCyan = lipgloss.NewStyle().
			Foreground(ColorBarText).
			Background(lipgloss.Color("#00B8D4")).
			Bold(true)

	statusBarDark = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D0D0D0")).
			Background(lipgloss.Color("#3C3C3C"))

	// PrefixStyle highlights the [hgline] marker
	PrefixStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

// StatusBar returns the status bar style for a theme name.
// Unknown names fall back to purple.
func StatusBar(theme string) lipgloss.Style {
	switch theme {
	case "cyan":
		return statusBarCyan
	case "dark":
		return statusBarDark
	default:
		return statusBarPurple
	}
}

// Prefix returns PrefixStyle over the background of the given theme.
func Prefix(theme string) lipgloss.Style {
	return PrefixStyle.Background(StatusBar(theme).GetBackground())
}
