package update

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/foryou/internal/application/settings"
	"github.com/tesso57/foryou/internal/domain/foryou"
	"github.com/tesso57/foryou/internal/domain/news"
	"github.com/tesso57/foryou/internal/presentation/tui/components/theme"
	"github.com/tesso57/foryou/internal/presentation/tui/metrics"
	"github.com/tesso57/foryou/internal/presentation/tui/state"
)

func TestFooterHeight_GrowsWithStatus(t *testing.T) {
	s := newTestState()

	base := footerHeight(s)
	s.StatusMessage = "could not open link"
	withStatus := footerHeight(s)
	if withStatus != base+1 {
		t.Fatalf("footer height should grow by the status line: base=%d with=%d", base, withStatus)
	}
}

func TestUpdateSizes(t *testing.T) {
	s := newTestState()
	s.Width = 120
	s.Height = 40

	UpdateSizes(s)
	want := s.Height - metrics.HeaderLines - footerHeight(s)
	if s.Viewport.Height != want || s.Viewport.Width != 120 {
		t.Fatalf("viewport = %dx%d, want 120x%d", s.Viewport.Width, s.Viewport.Height, want)
	}

	s.Height = 2
	UpdateSizes(s)
	if s.Viewport.Height != 1 {
		t.Fatalf("viewport height = %d, want 1", s.Viewport.Height)
	}
}

func TestSync_ScrollsFocusedCardIntoView(t *testing.T) {
	s := newTestState()
	s.Height = 16
	feed := make([]news.SaveableNewsResource, 10)
	for i := range feed {
		feed[i] = news.SaveableNewsResource{NewsResource: news.NewsResource{ID: i, Title: "story"}}
	}
	HandleStateMsg(s, StateMsg{State: foryou.FeedWithoutTopicSelection{Feed: feed}}, Deps{})
	Sync(s)
	if s.Viewport.YOffset != 0 {
		t.Fatalf("initial offset = %d, want 0", s.Viewport.YOffset)
	}

	s.Focus = 9
	Sync(s)
	span := s.Spans[9]
	if span.Bottom >= s.Viewport.YOffset+s.Viewport.Height || span.Top < s.Viewport.YOffset {
		t.Fatalf("focused span %+v outside viewport offset=%d height=%d", span, s.Viewport.YOffset, s.Viewport.Height)
	}

	s.Focus = 0
	Sync(s)
	if s.Viewport.YOffset != 0 {
		t.Fatalf("offset after returning to top = %d, want 0", s.Viewport.YOffset)
	}
}

func TestSync_KeepsManualScrollUntilFocusMoves(t *testing.T) {
	s := newTestState()
	s.Height = 16
	feed := make([]news.SaveableNewsResource, 10)
	for i := range feed {
		feed[i] = news.SaveableNewsResource{NewsResource: news.NewsResource{ID: i, Title: "story"}}
	}
	HandleStateMsg(s, StateMsg{State: foryou.FeedWithoutTopicSelection{Feed: feed}}, Deps{})
	Sync(s)

	s.Viewport.SetYOffset(20)
	Sync(s)
	if s.Viewport.YOffset != 20 {
		t.Fatalf("offset with unchanged focus = %d, want 20", s.Viewport.YOffset)
	}

	s.Follow = true
	Sync(s)
	if s.Viewport.YOffset != 0 || s.Follow {
		t.Fatalf("follow: offset = %d follow = %v, want 0 false", s.Viewport.YOffset, s.Follow)
	}

	s.Viewport.SetYOffset(20)
	s.Focus = 1
	Sync(s)
	span := s.Spans[1]
	if span.Top < s.Viewport.YOffset || span.Bottom >= s.Viewport.YOffset+s.Viewport.Height {
		t.Fatalf("focused span %+v outside viewport offset=%d height=%d", span, s.Viewport.YOffset, s.Viewport.Height)
	}
}

func TestSync_ScrollsTopicGrid(t *testing.T) {
	s := newTestState()
	s.Width = metrics.TopicColumnWidth + metrics.HorizontalPadding
	topics := make([]news.FollowableTopic, 9)
	for i := range topics {
		topics[i] = news.FollowableTopic{Topic: news.Topic{ID: i, Name: "topic"}}
	}
	HandleStateMsg(s, StateMsg{State: foryou.FeedWithTopicSelection{Topics: topics}}, Deps{})

	s.Focus = 7
	Sync(s)
	if s.GridOffset != 2 {
		t.Fatalf("grid offset = %d, want 2", s.GridOffset)
	}
	s.Focus = 1
	Sync(s)
	if s.GridOffset != 0 {
		t.Fatalf("grid offset = %d, want 0", s.GridOffset)
	}
}

func TestSync_PaintsLoading(t *testing.T) {
	s := newTestState()
	Rebuild(s, Deps{})
	Sync(s)
	if !strings.Contains(s.Viewport.View(), "Loading for you") {
		t.Fatalf("viewport should show the loading indicator, got %q", s.Viewport.View())
	}
}

func newTestState() *state.ModelState {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", Left: "h", Right: "l",
		UpPage: "ctrl+u", DownPage: "ctrl+d", Top: "g", Bottom: "G",
		Open: "enter,space", Bookmark: "b", Quit: "q",
	})
	return &state.ModelState{
		Help:     help.New(),
		Keys:     keys,
		Viewport: viewport.New(0, 0),
		Theme:    theme.Default,
		Width:    100,
		Height:   40,
	}
}
