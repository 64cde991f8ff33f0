// Package topicgrid renders the onboarding topic grid.
//
// Topics fill the grid column by column with a fixed number of rows. When
// the columns do not fit the available width the grid scrolls horizontally.
package topicgrid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/foryou/internal/presentation/tui/components/theme"
	"github.com/tesso57/foryou/internal/presentation/tui/metrics"
	"github.com/tesso57/foryou/internal/presentation/tui/textutil"
)

// Props defines the properties for the topic grid.
type Props struct {
	Title    string
	Subtitle string
	Columns  [][]string
	Selected [][]bool
	// FocusColumn and FocusRow address the focused cell; -1 when the grid
	// has no focus.
	FocusColumn int
	FocusRow    int
	Offset      int
	Width       int
	Theme       theme.Theme
}

// VisibleColumns is the number of grid columns that fit in width.
func VisibleColumns(width int) int {
	step := metrics.TopicColumnWidth + metrics.TopicColumnGap
	return max(1, (width+metrics.TopicColumnGap)/step)
}

// ScrollOffset returns the first visible column so that focus stays in
// view, moving offset as little as possible.
func ScrollOffset(offset, focus, visible, total int) int {
	if total <= visible {
		return 0
	}
	if focus >= 0 {
		if focus < offset {
			offset = focus
		}
		if focus >= offset+visible {
			offset = focus - visible + 1
		}
	}
	return min(max(offset, 0), total-visible)
}

// Render renders the title, the subtitle and the visible grid columns.
func Render(p Props) string {
	width := max(p.Width, metrics.TopicColumnWidth)
	titleStyle := lipgloss.NewStyle().Bold(true).Width(width).Align(lipgloss.Center)
	subtitleStyle := lipgloss.NewStyle().Foreground(p.Theme.Muted).Width(width).Align(lipgloss.Center)

	parts := []string{
		titleStyle.Render(p.Title),
		subtitleStyle.Render(p.Subtitle),
		"",
	}
	if grid := renderGrid(p, width); grid != "" {
		parts = append(parts, grid)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderGrid(p Props, width int) string {
	total := len(p.Columns)
	if total == 0 {
		return ""
	}
	visible := VisibleColumns(width)
	offset := ScrollOffset(p.Offset, p.FocusColumn, visible, total)
	end := min(offset+visible, total)

	cellStyle := lipgloss.NewStyle().Width(metrics.TopicColumnWidth)
	focusStyle := cellStyle.Bold(true).Foreground(p.Theme.Accent).Reverse(true)
	selectedStyle := cellStyle.Foreground(p.Theme.Accent)
	gap := strings.Repeat(" ", metrics.TopicColumnGap)

	cols := make([]string, 0, 2*(end-offset))
	for c := offset; c < end; c++ {
		cells := make([]string, 0, len(p.Columns[c]))
		for r, label := range p.Columns[c] {
			text := textutil.Truncate(label, metrics.TopicColumnWidth)
			switch {
			case c == p.FocusColumn && r == p.FocusRow:
				cells = append(cells, focusStyle.Render(text))
			case selected(p.Selected, c, r):
				cells = append(cells, selectedStyle.Render(text))
			default:
				cells = append(cells, cellStyle.Render(text))
			}
		}
		if c > offset {
			cols = append(cols, gap)
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, cells...))
	}

	grid := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if total > visible {
		grid = lipgloss.JoinVertical(lipgloss.Left, grid, scrollHint(p.Theme, offset, end, total))
	}
	return grid
}

func scrollHint(t theme.Theme, offset, end, total int) string {
	left, right := " ", " "
	if offset > 0 {
		left = "‹"
	}
	if end < total {
		right = "›"
	}
	return lipgloss.NewStyle().
		Foreground(t.Muted).
		Render(fmt.Sprintf("%s columns %d-%d of %d %s", left, offset+1, end, total, right))
}

func selected(sel [][]bool, c, r int) bool {
	return c < len(sel) && r < len(sel[c]) && sel[c][r]
}
