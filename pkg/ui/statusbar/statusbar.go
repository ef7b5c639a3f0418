// Package statusbar draws a one-line status bar on the bottom terminal row
// showing the working directory and the hg_branch module.
package statusbar

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"hgline/pkg/ui/styles"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const (
	barPrefix      = "[hgline]"
	minGap         = 2
	contentPadding = 2
)

// StatusBar renders a status bar at the bottom of the terminal
type StatusBar struct {
	mu         sync.RWMutex
	currentDir string
	module     string
	theme      string
	fixedSize  bool
	termWidth  int
	termHeight int
}

// New creates a status bar for dir
func New(dir string) *StatusBar {
	sb := &StatusBar{currentDir: dir}
	sb.updateTerminalSize()
	return sb
}

// SetModule sets the rendered hg_branch module shown on the right. An empty
// string hides it.
func (sb *StatusBar) SetModule(module string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.module = module
}

// SetTheme selects the bar colors ("purple", "cyan" or "dark")
func (sb *StatusBar) SetTheme(theme string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.theme = theme
}

// SetSize pins the terminal size instead of querying stdout
func (sb *StatusBar) SetSize(width, height int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.fixedSize = true
	sb.termWidth = width
	sb.termHeight = height
}

// Line returns the bar content, padded to the terminal width, without
// positioning escapes.
func (sb *StatusBar) Line() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.updateTerminalSize()
	return sb.line()
}

// Render draws the status bar at the bottom of the terminal
func (sb *StatusBar) Render() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.updateTerminalSize()

	// Save cursor, move to bottom, print, restore cursor
	return fmt.Sprintf(
		"\033[s\033[%d;1H%s\033[0m\033[u",
		sb.termHeight,
		sb.styledLine(),
	)
}

// styledLine paints the bar in the theme colors with the prefix highlighted.
func (sb *StatusBar) styledLine() string {
	bar := styles.StatusBar(sb.theme)
	line := sb.line()
	before, after, found := strings.Cut(line, barPrefix)
	if !found {
		return bar.Render(line)
	}
	return bar.Render(before) + styles.Prefix(sb.theme).Render(barPrefix) + bar.Render(after)
}

// Clear removes the status bar from the display
func (sb *StatusBar) Clear() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	clearLine := strings.Repeat(" ", sb.termWidth)
	return fmt.Sprintf("\033[s\033[%d;1H%s\033[u", sb.termHeight, clearLine)
}

func (sb *StatusBar) line() string {
	innerWidth := sb.termWidth - contentPadding
	if innerWidth <= 0 {
		return strings.Repeat(" ", max(sb.termWidth, 0))
	}

	right := ansi.Strip(sb.module)
	rightWidth := ansi.StringWidth(right)
	if rightWidth > innerWidth {
		right = ansi.Truncate(right, innerWidth, "")
		rightWidth = ansi.StringWidth(right)
	}

	left := barPrefix
	if dir := shortenHome(sb.currentDir); dir != "" {
		left += " " + dir
	}
	leftAvailable := innerWidth - rightWidth
	if rightWidth > 0 {
		leftAvailable -= minGap
	}
	if leftAvailable < 0 {
		leftAvailable = 0
	}
	if ansi.StringWidth(left) > leftAvailable {
		left = ansi.Truncate(left, leftAvailable, "…")
	}

	gap := innerWidth - ansi.StringWidth(left) - rightWidth
	if gap < 0 {
		gap = 0
	}
	return " " + left + strings.Repeat(" ", gap) + right + " "
}

// updateTerminalSize refreshes the cached terminal dimensions
func (sb *StatusBar) updateTerminalSize() {
	if sb.fixedSize {
		return
	}
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// Fallback to defaults
		sb.termWidth = 80
		sb.termHeight = 24
		return
	}
	sb.termWidth = width
	sb.termHeight = height
}

// shortenHome replaces the home directory prefix with ~
func shortenHome(dir string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return dir
	}
	if dir == home {
		return "~"
	}
	if strings.HasPrefix(dir, home+string(os.PathSeparator)) {
		return "~" + dir[len(home):]
	}
	return dir
}
