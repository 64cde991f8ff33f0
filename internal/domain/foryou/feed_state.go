// Package foryou defines the UI states of the "For You" feed screen.
package foryou

import (
	"fmt"

	"github.com/tesso57/foryou/internal/domain/news"
)

// FeedUIState is what the feed screen currently shows.
//
// The set of variants is closed: Loading, FeedWithTopicSelection and
// FeedWithoutTopicSelection. Consumers dispatch with Match, which takes one
// handler per variant.
type FeedUIState interface {
	feedUIState()
}

// Loading is shown until the first feed is available.
type Loading struct{}

// FeedWithTopicSelection is shown while the user has not confirmed an
// initial set of followed topics.
type FeedWithTopicSelection struct {
	Topics []news.FollowableTopic
	Feed   []news.SaveableNewsResource
}

// FeedWithoutTopicSelection is shown once topics have been confirmed.
type FeedWithoutTopicSelection struct {
	Feed []news.SaveableNewsResource
}

func (Loading) feedUIState()                   {}
func (FeedWithTopicSelection) feedUIState()    {}
func (FeedWithoutTopicSelection) feedUIState() {}

// CanSaveSelectedTopics reports whether at least one topic is followed.
func (s FeedWithTopicSelection) CanSaveSelectedTopics() bool {
	for _, t := range s.Topics {
		if t.IsFollowed {
			return true
		}
	}
	return false
}

// Match calls the handler for the active variant of s and returns its result.
// It panics on a nil state.
func Match[R any](
	s FeedUIState,
	loading func(Loading) R,
	withSelection func(FeedWithTopicSelection) R,
	withoutSelection func(FeedWithoutTopicSelection) R,
) R {
	switch v := s.(type) {
	case Loading:
		return loading(v)
	case FeedWithTopicSelection:
		return withSelection(v)
	case FeedWithoutTopicSelection:
		return withoutSelection(v)
	}
	panic(fmt.Sprintf("foryou: unexpected feed state %T", s))
}
