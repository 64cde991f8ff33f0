// Package button provides the centred confirm button.
package button

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/foryou/internal/presentation/tui/components/theme"
)

// Props defines the properties for the button component.
type Props struct {
	Label   string
	Enabled bool
	Focused bool
	Width   int
	Theme   theme.Theme
}

// Render renders the button centred within Width.
func Render(p Props) string {
	style := lipgloss.NewStyle().
		Padding(0, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Theme.Border)

	switch {
	case !p.Enabled:
		style = style.Foreground(p.Theme.Muted).BorderForeground(p.Theme.Muted).Faint(true)
	case p.Focused:
		style = style.Bold(true).Foreground(p.Theme.Accent).BorderForeground(p.Theme.Accent)
	}
	if p.Focused && !p.Enabled {
		style = style.BorderStyle(lipgloss.DoubleBorder())
	}

	btn := style.Render(p.Label)
	return lipgloss.PlaceHorizontal(max(p.Width, lipgloss.Width(btn)), lipgloss.Center, btn)
}
