package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/foryou/internal/presentation/tui/components/topicgrid"
	"github.com/tesso57/foryou/internal/presentation/tui/metrics"
	"github.com/tesso57/foryou/internal/presentation/tui/state"
	"github.com/tesso57/foryou/internal/presentation/tui/view"
)

// UpdateSizes fits the viewport between header and footer.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	s.Viewport.Width = s.Width
	s.Viewport.Height = clampMin(s.Height-metrics.HeaderLines-footerHeight(s), 1)
}

// Sync paints the tree into the viewport. The focused control is scrolled
// into view only when focus moved or s.Follow is set, so a viewport scrolled
// by the mouse wheel stays where it is.
func Sync(s *state.ModelState) {
	UpdateSizes(s)
	width := ContentWidth(s)
	target := s.FocusedTarget()
	if sel, ok := topicSelectionAt(s.Tree, target); ok {
		s.GridOffset = topicgrid.ScrollOffset(
			s.GridOffset,
			sel.Column(target.Control),
			topicgrid.VisibleColumns(width),
			len(sel.Columns()),
		)
	}

	painted := view.Paint(s.Tree, target, view.PaintOptions{
		Width:      width,
		Spinner:    s.Spinner.View(),
		GridOffset: s.GridOffset,
		Theme:      s.Theme,
	})
	s.Spans = painted.Spans
	s.Viewport.SetContent(painted.Content)

	if target == s.Scrolled && !s.Follow {
		return
	}
	s.Scrolled = target
	s.Follow = false
	if target.Item < 0 || target.Item >= len(painted.Spans) {
		return
	}
	if s.Focus == 0 {
		s.Viewport.GotoTop()
		return
	}
	span := painted.Spans[target.Item]
	height := max(s.Viewport.Height, 1)
	switch {
	case span.Top < s.Viewport.YOffset:
		s.Viewport.SetYOffset(span.Top)
	case span.Bottom >= s.Viewport.YOffset+height:
		s.Viewport.SetYOffset(min(span.Top, span.Bottom-height+1))
	}
}

// ContentWidth is the width available to painted items.
func ContentWidth(s *state.ModelState) int {
	return clampMin(s.Width-metrics.HorizontalPadding, 1)
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.StatusMessage, s.Help.View(&s.Keys)))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
