// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/tesso57/foryou/internal/domain/foryou"
	"github.com/tesso57/foryou/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/foryou/internal/presentation/tui/components/main"
	"github.com/tesso57/foryou/internal/presentation/tui/state"
	"github.com/tesso57/foryou/internal/presentation/tui/view"
)

const screenTitle = "For You"

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header: header.Props{
			Title:  screenTitle,
			Status: headerStatus(m.state),
			Width:  m.state.Width,
			Theme:  m.state.Theme,
		},
		Main: mainview.Props{
			Width:  m.state.Viewport.Width,
			Height: m.state.Viewport.Height,
			Body:   m.state.Viewport.View(),
		},
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildFooterProps() string {
	m.state.Help.Width = m.state.Width
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.StatusMessage, helpText)
}

func headerStatus(st *state.ModelState) string {
	status := foryou.Match(st.Feed,
		func(foryou.Loading) string { return "Loading…" },
		func(s foryou.FeedWithTopicSelection) string {
			return "Pick topics to personalise your feed · " + storyCount(len(s.Feed))
		},
		func(s foryou.FeedWithoutTopicSelection) string { return storyCount(len(s.Feed)) },
	)
	if st.Closed {
		status += " · updates stopped"
	}
	return status
}

func storyCount(n int) string {
	if n == 1 {
		return "1 story"
	}
	return fmt.Sprintf("%d stories", n)
}
