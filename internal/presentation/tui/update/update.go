// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tesso57/foryou/internal/application/stream"
	"github.com/tesso57/foryou/internal/domain/foryou"
	"github.com/tesso57/foryou/internal/presentation/tui/intent"
	"github.com/tesso57/foryou/internal/presentation/tui/screen"
	"github.com/tesso57/foryou/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Callbacks screen.Callbacks
	Logger    *log.Logger
}

// StateMsg delivers a feed state published by the view-model.
type StateMsg struct {
	State foryou.FeedUIState
}

// SubscriptionEndedMsg is emitted when the state subscription stops
// delivering values.
type SubscriptionEndedMsg struct {
	Err error
}

// WaitForStateCmd creates a command that waits for the next feed state.
// The caller re-arms it after every StateMsg.
func WaitForStateCmd(ctx context.Context, sub *stream.Subscription[foryou.FeedUIState]) tea.Cmd {
	return func() tea.Msg {
		st, err := sub.Next(ctx)
		if err != nil {
			return SubscriptionEndedMsg{Err: err}
		}
		return StateMsg{State: st}
	}
}

// HandleStateMsg stores the new snapshot and re-renders the tree, keeping
// focus on the same control when it still exists.
func HandleStateMsg(s *state.ModelState, msg StateMsg, deps Deps) {
	prev := focusKey(s.Tree, s.FocusedTarget())
	s.Feed = msg.State
	Rebuild(s, deps)
	restoreFocus(s, prev)
}

// HandleSubscriptionEnded marks the state stream as finished.
func HandleSubscriptionEnded(s *state.ModelState, msg SubscriptionEndedMsg, deps Deps) {
	s.Closed = true
	if msg.Err == nil || errors.Is(msg.Err, stream.ErrClosed) || errors.Is(msg.Err, context.Canceled) {
		return
	}
	if deps.Logger != nil {
		deps.Logger.Error("feed subscription ended", "err", msg.Err)
	}
	s.StatusMessage = fmt.Sprintf("Feed updates stopped: %v", msg.Err)
}

// Rebuild renders the current snapshot into a fresh tree.
func Rebuild(s *state.ModelState, deps Deps) {
	if s.Feed == nil {
		s.Feed = foryou.Loading{}
	}
	s.Tree = screen.Render(s.Feed, deps.Callbacks)
}

// HandleKeyMsg processes key input.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.None {
		return nil, false
	}
	s.StatusMessage = ""

	switch parsed.Type {
	case intent.Quit:
		return tea.Quit, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		UpdateSizes(s)
	case intent.Up:
		moveFocus(s, -1)
	case intent.Down:
		moveFocus(s, 1)
	case intent.Left:
		moveColumn(s, -1)
	case intent.Right:
		moveColumn(s, 1)
	case intent.PageUp:
		pageFocus(s, -1)
	case intent.PageDown:
		pageFocus(s, 1)
	case intent.Top:
		s.Focus = 0
	case intent.Bottom:
		s.Focus = max(len(s.Tree.Targets())-1, 0)
	case intent.Activate:
		s.Tree.Activate(s.FocusedTarget())
	case intent.Bookmark:
		s.Tree.ToggleBookmark(s.FocusedTarget())
	}
	return nil, true
}

// HandleWindowSize records the terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
	s.Follow = true

	UpdateSizes(s)
}

func moveFocus(s *state.ModelState, delta int) {
	n := len(s.Tree.Targets())
	if n == 0 {
		s.Focus = 0
		return
	}
	s.Focus = clamp(s.Focus+delta, 0, n-1)
}

// moveColumn jumps a whole grid column inside the topic selection.
func moveColumn(s *state.ModelState, dir int) {
	target := s.FocusedTarget()
	sel, ok := topicSelectionAt(s.Tree, target)
	if !ok {
		return
	}
	next := target.Control + dir*max(sel.Rows, 1)
	if next < 0 || next >= len(sel.Toggles) {
		lastCol := sel.Column(len(sel.Toggles) - 1)
		if dir < 0 || sel.Column(target.Control) == lastCol {
			return
		}
		next = len(sel.Toggles) - 1
	}
	s.Focus += next - target.Control
}

// pageFocus moves focus to the control roughly one viewport height away.
func pageFocus(s *state.ModelState, dir int) {
	targets := s.Tree.Targets()
	if len(targets) == 0 || len(s.Spans) != len(s.Tree.Items) {
		return
	}
	current := s.FocusedTarget()
	if current == screen.NoTarget {
		return
	}
	goal := s.Spans[current.Item].Top + dir*max(s.Viewport.Height, 1)

	if dir > 0 {
		for i := s.Focus + 1; i < len(targets); i++ {
			if s.Spans[targets[i].Item].Top >= goal {
				s.Focus = i
				return
			}
		}
		s.Focus = len(targets) - 1
		return
	}
	for i := s.Focus - 1; i >= 0; i-- {
		if s.Spans[targets[i].Item].Top <= goal {
			s.Focus = i
			return
		}
	}
	s.Focus = 0
}

func topicSelectionAt(tree screen.Tree, target screen.Target) (screen.TopicSelection, bool) {
	if target.Item < 0 || target.Item >= len(tree.Items) || target.Control < 0 {
		return screen.TopicSelection{}, false
	}
	sel, ok := tree.Items[target.Item].(screen.TopicSelection)
	return sel, ok
}

func focusKey(tree screen.Tree, target screen.Target) string {
	if target.Item < 0 || target.Item >= len(tree.Items) {
		return ""
	}
	switch n := tree.Items[target.Item].(type) {
	case screen.TopicSelection:
		if target.Control >= 0 && target.Control < len(n.Toggles) {
			return fmt.Sprintf("topic:%d", n.Toggles[target.Control].TopicID)
		}
	case screen.ConfirmButton:
		return "confirm"
	case screen.NewsCard:
		return fmt.Sprintf("news:%d", n.Resource.ID)
	}
	return ""
}

func restoreFocus(s *state.ModelState, key string) {
	targets := s.Tree.Targets()
	if key != "" {
		for i, target := range targets {
			if focusKey(s.Tree, target) == key {
				s.Focus = i
				return
			}
		}
	}
	// The topic selection went away: start over at the top of the feed.
	if key == "confirm" || strings.HasPrefix(key, "topic:") {
		s.Focus = 0
		return
	}
	s.Focus = clamp(s.Focus, 0, max(len(targets)-1, 0))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
