// Package screen renders the "For You" feed state into a tree of UI nodes.
//
// Render is pure: the same state always yields the same tree, and the
// callbacks only run when a node's action is triggered.
package screen

import (
	"github.com/tesso57/foryou/internal/domain/foryou"
	"github.com/tesso57/foryou/internal/domain/news"
)

// TopicGridRows is the number of rows in the topic selection grid.
const TopicGridRows = 3

const (
	loadingDescription = "Loading for you…"
	onboardingTitle    = "What are you interested in?"
	onboardingSubtitle = "Updates from topics you follow will appear here. Follow some things to get started."
	confirmButtonLabel = "Done"
)

// Callbacks receives user intents raised by the rendered tree.
type Callbacks struct {
	OnTopicCheckedChanged        func(topicID int, followed bool)
	SaveFollowedTopics           func()
	OnNewsResourceCheckedChanged func(resourceID int, saved bool)
	OpenURL                      func(url string)
}

func (cb Callbacks) withDefaults() Callbacks {
	if cb.OnTopicCheckedChanged == nil {
		cb.OnTopicCheckedChanged = func(int, bool) {}
	}
	if cb.SaveFollowedTopics == nil {
		cb.SaveFollowedTopics = func() {}
	}
	if cb.OnNewsResourceCheckedChanged == nil {
		cb.OnNewsResourceCheckedChanged = func(int, bool) {}
	}
	if cb.OpenURL == nil {
		cb.OpenURL = func(string) {}
	}
	return cb
}

// Render builds the feed screen for state.
func Render(state foryou.FeedUIState, cb Callbacks) Tree {
	cb = cb.withDefaults()
	return foryou.Match(state,
		func(foryou.Loading) Tree {
			return Tree{Items: []Node{LoadingIndicator{Description: loadingDescription}}}
		},
		func(s foryou.FeedWithTopicSelection) Tree {
			items := make([]Node, 0, len(s.Feed)+2)
			items = append(items,
				topicSelection(s.Topics, cb),
				ConfirmButton{
					Label:   confirmButtonLabel,
					Enabled: s.CanSaveSelectedTopics(),
					OnClick: cb.SaveFollowedTopics,
				},
			)
			return Tree{Items: appendFeed(items, s.Feed, cb)}
		},
		func(s foryou.FeedWithoutTopicSelection) Tree {
			return Tree{Items: appendFeed(make([]Node, 0, len(s.Feed)), s.Feed, cb)}
		},
	)
}

func topicSelection(topics []news.FollowableTopic, cb Callbacks) TopicSelection {
	toggles := make([]TopicToggle, len(topics))
	for i, t := range topics {
		id, followed := t.Topic.ID, t.IsFollowed
		toggles[i] = TopicToggle{
			TopicID:  id,
			Name:     t.Topic.Name,
			Selected: followed,
			OnClick:  func() { cb.OnTopicCheckedChanged(id, !followed) },
		}
	}
	return TopicSelection{
		Title:    onboardingTitle,
		Subtitle: onboardingSubtitle,
		Rows:     TopicGridRows,
		Toggles:  toggles,
	}
}

func appendFeed(items []Node, feed []news.SaveableNewsResource, cb Callbacks) []Node {
	for _, r := range feed {
		resource, saved := r.NewsResource, r.IsSaved
		items = append(items, NewsCard{
			Resource:         resource,
			Bookmarked:       saved,
			OnClick:          func() { cb.OpenURL(resource.URL) },
			OnToggleBookmark: func() { cb.OnNewsResourceCheckedChanged(resource.ID, !saved) },
		})
	}
	return items
}
