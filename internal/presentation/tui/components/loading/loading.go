// Package loading provides the feed loading indicator.
package loading

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/foryou/internal/presentation/tui/components/theme"
)

// Props defines the properties for the loading indicator.
type Props struct {
	Spinner     string
	Description string
	Width       int
	Theme       theme.Theme
}

// Render renders the spinner and its description, centred horizontally.
func Render(p Props) string {
	text := lipgloss.NewStyle().Foreground(p.Theme.Muted).Render(p.Description)
	line := text
	if p.Spinner != "" {
		line = p.Spinner + " " + text
	}
	return lipgloss.NewStyle().
		Width(max(p.Width, lipgloss.Width(line))).
		Align(lipgloss.Center).
		PaddingTop(1).
		Render(line)
}
