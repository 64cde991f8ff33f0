package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/foryou/internal/presentation/tui/components/button"
	"github.com/tesso57/foryou/internal/presentation/tui/components/card"
	"github.com/tesso57/foryou/internal/presentation/tui/components/loading"
	"github.com/tesso57/foryou/internal/presentation/tui/components/theme"
	"github.com/tesso57/foryou/internal/presentation/tui/components/topicgrid"
	"github.com/tesso57/foryou/internal/presentation/tui/metrics"
	"github.com/tesso57/foryou/internal/presentation/tui/presenter"
	"github.com/tesso57/foryou/internal/presentation/tui/screen"
)

// PaintOptions configures how a screen tree is painted.
type PaintOptions struct {
	Width      int
	Spinner    string
	GridOffset int
	Theme      theme.Theme
}

// Span is the line range [Top, Bottom] an item occupies in painted content.
type Span struct {
	Top    int
	Bottom int
}

// Painted is the result of painting a tree.
type Painted struct {
	Content string
	Spans   []Span // one per tree item
}

// Paint renders every item of tree in order, separated by a blank line,
// with focus highlighting the focused control.
func Paint(tree screen.Tree, focus screen.Target, opts PaintOptions) Painted {
	blocks := make([]string, 0, len(tree.Items))
	spans := make([]Span, 0, len(tree.Items))
	line := 0
	for i, item := range tree.Items {
		block := paintItem(item, i, focus, opts)
		if i > 0 {
			line += metrics.ItemGapLines
		}
		h := lipgloss.Height(block)
		spans = append(spans, Span{Top: line, Bottom: line + h - 1})
		line += h
		blocks = append(blocks, block)
	}
	gap := strings.Repeat("\n", metrics.ItemGapLines+1)
	return Painted{Content: strings.Join(blocks, gap), Spans: spans}
}

func paintItem(item screen.Node, index int, focus screen.Target, opts PaintOptions) string {
	focused := focus.Item == index
	switch n := item.(type) {
	case screen.LoadingIndicator:
		return loading.Render(loading.Props{
			Spinner:     opts.Spinner,
			Description: n.Description,
			Width:       opts.Width,
			Theme:       opts.Theme,
		})
	case screen.TopicSelection:
		return paintTopicSelection(n, focused, focus.Control, opts)
	case screen.ConfirmButton:
		return button.Render(button.Props{
			Label:   n.Label,
			Enabled: n.Enabled,
			Focused: focused,
			Width:   opts.Width,
			Theme:   opts.Theme,
		})
	case screen.NewsCard:
		return card.Render(card.Props{
			Card:    presenter.NewCard(n),
			Focused: focused,
			Width:   opts.Width,
			Theme:   opts.Theme,
		})
	}
	return ""
}

func paintTopicSelection(sel screen.TopicSelection, focused bool, control int, opts PaintOptions) string {
	cols := sel.Columns()
	labels := make([][]string, len(cols))
	selected := make([][]bool, len(cols))
	for c, col := range cols {
		labels[c] = make([]string, len(col))
		selected[c] = make([]bool, len(col))
		for r, toggle := range col {
			labels[c][r] = presenter.ToggleLabel(toggle)
			selected[c][r] = toggle.Selected
		}
	}

	focusCol, focusRow := -1, -1
	if focused && control >= 0 && control < len(sel.Toggles) {
		focusCol = sel.Column(control)
		focusRow = control - focusCol*max(sel.Rows, 1)
	}
	return topicgrid.Render(topicgrid.Props{
		Title:       sel.Title,
		Subtitle:    sel.Subtitle,
		Columns:     labels,
		Selected:    selected,
		FocusColumn: focusCol,
		FocusRow:    focusRow,
		Offset:      opts.GridOffset,
		Width:       opts.Width,
		Theme:       opts.Theme,
	})
}
