// Package header provides the screen header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/foryou/internal/presentation/tui/components/theme"
	"github.com/tesso57/foryou/internal/presentation/tui/textutil"
)

// Props defines the properties for the header component.
type Props struct {
	Title  string
	Status string
	Width  int
	Theme  theme.Theme
}

// Render renders the header component: the title line and a muted status
// line.
func Render(p Props) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Theme.Accent).
		PaddingLeft(1)
	statusStyle := lipgloss.NewStyle().
		Foreground(p.Theme.Muted).
		PaddingLeft(1)

	width := p.Width - 1
	if p.Width <= 0 {
		width = lipgloss.Width(p.Title) + lipgloss.Width(p.Status)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(textutil.Truncate(p.Title, width)),
		statusStyle.Render(textutil.Truncate(p.Status, width)),
	)
}
