package tui

import (
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/foryou/internal/application/settings"
	"github.com/tesso57/foryou/internal/application/stream"
	"github.com/tesso57/foryou/internal/domain/foryou"
	"github.com/tesso57/foryou/internal/infrastructure/logging"
)

type stubViewModel struct {
	mock.Mock
	source *stream.Source[foryou.FeedUIState]

	mu         sync.Mutex
	selections [][2]any
	saves      int
	bookmarks  [][2]any
}

func newStubViewModel() *stubViewModel {
	return &stubViewModel{source: stream.NewSource[foryou.FeedUIState](foryou.Loading{})}
}

func (s *stubViewModel) Subscribe() *stream.Subscription[foryou.FeedUIState] {
	return s.source.Subscribe()
}

func (s *stubViewModel) UpdateTopicSelection(topicID int, checked bool) {
	if len(s.ExpectedCalls) > 0 {
		s.Called(topicID, checked)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections = append(s.selections, [2]any{topicID, checked})
}

func (s *stubViewModel) SaveFollowedTopics() {
	if len(s.ExpectedCalls) > 0 {
		s.Called()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
}

func (s *stubViewModel) UpdateNewsResourceSaved(resourceID int, checked bool) {
	if len(s.ExpectedCalls) > 0 {
		s.Called(resourceID, checked)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks = append(s.bookmarks, [2]any{resourceID, checked})
}

func testSettings() settings.Settings {
	return settings.Settings{
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", Left: "h,left", Right: "l,right",
			UpPage: "ctrl+u", DownPage: "ctrl+d", Top: "g", Bottom: "G",
			Open: "enter,space", Bookmark: "b", Quit: "q",
		},
	}
}

func newTestModel(vm FeedViewModel) *Model {
	return NewModel(testSettings(), vm, logging.Discard())
}
