// Package card renders a news resource card.
package card

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/foryou/internal/presentation/tui/components/theme"
	"github.com/tesso57/foryou/internal/presentation/tui/metrics"
	"github.com/tesso57/foryou/internal/presentation/tui/presenter"
	"github.com/tesso57/foryou/internal/presentation/tui/textutil"
)

// Props defines the properties for the card component.
type Props struct {
	Card    presenter.Card
	Focused bool
	Width   int
	Theme   theme.Theme
}

// Render renders a bordered card. Width is the outer width including the
// border.
func Render(p Props) string {
	outer := min(max(p.Width, metrics.CardMinWidth), metrics.CardMaxWidth)
	inner := outer - 4 // border and horizontal padding

	border := lipgloss.RoundedBorder()
	borderColor := p.Theme.Border
	if p.Focused {
		border = lipgloss.ThickBorder()
		borderColor = p.Theme.Accent
	}
	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(outer - 2)

	icon := presenter.BookmarkIcon(p.Card.Bookmarked)
	titleStyle := lipgloss.NewStyle().Bold(true)
	if p.Focused {
		titleStyle = titleStyle.Foreground(p.Theme.Accent)
	}
	iconStyle := lipgloss.NewStyle().Foreground(p.Theme.Accent)
	title := titleStyle.Render(textutil.Truncate(p.Card.Title, inner-lipgloss.Width(icon)-1))
	gap := max(1, inner-lipgloss.Width(title)-lipgloss.Width(icon))
	lines := []string{title + lipgloss.NewStyle().Width(gap).Render("") + iconStyle.Render(icon)}

	muted := lipgloss.NewStyle().Foreground(p.Theme.Muted)
	if p.Card.Meta != "" {
		lines = append(lines, muted.Render(textutil.Truncate(p.Card.Meta, inner)))
	}
	if body := textutil.WrapLines(p.Card.Content, inner, metrics.CardContentLines); len(body) > 0 {
		lines = append(lines, "")
		lines = append(lines, body...)
	}
	if p.Card.Topics != "" {
		lines = append(lines, "", iconStyle.Render(textutil.Truncate(p.Card.Topics, inner)))
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
