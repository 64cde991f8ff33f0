package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/foryou/internal/domain/foryou"
	"github.com/tesso57/foryou/internal/presentation/tui/components/theme"
	"github.com/tesso57/foryou/internal/presentation/tui/screen"
	"github.com/tesso57/foryou/internal/presentation/tui/view"
)

// ModelState holds the presentation state for the TUI.
//
// Feed is the last snapshot received from the view-model; everything else
// is interaction state owned by the TUI.
type ModelState struct {
	Feed          foryou.FeedUIState
	Tree          screen.Tree
	Spans         []view.Span
	Focus         int
	GridOffset    int
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Theme         theme.Theme
	Width         int
	Height        int
	StatusMessage string
	Closed        bool

	// Scrolled is the focused control last scrolled into view. Follow asks
	// the next sync to scroll to focus even if focus has not moved.
	Scrolled screen.Target
	Follow   bool
}

// Loading reports whether the feed has not been delivered yet.
func (s *ModelState) Loading() bool {
	_, ok := s.Feed.(foryou.Loading)
	return s.Feed == nil || ok
}

// FocusedTarget returns the focused control of the current tree.
func (s *ModelState) FocusedTarget() screen.Target {
	targets := s.Tree.Targets()
	if s.Focus < 0 || s.Focus >= len(targets) {
		return screen.NoTarget
	}
	return targets[s.Focus]
}
