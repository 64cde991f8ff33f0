// Package fake provides repositories that return empty data, for
// development builds without any content source.
package fake

import (
	"context"

	"github.com/tesso57/foryou/internal/application/stream"
	"github.com/tesso57/foryou/internal/domain/news"
)

// NewsRepository yields an empty list on every stream and nothing after.
type NewsRepository struct{}

// NewsResourcesStream returns a stream holding a single empty list.
func (NewsRepository) NewsResourcesStream(ctx context.Context) <-chan []news.NewsResource {
	return stream.Once(ctx, []news.NewsResource{})
}

// NewsResourcesStreamByTopics returns a stream holding a single empty list,
// whatever the filter.
func (NewsRepository) NewsResourcesStreamByTopics(ctx context.Context, _ []int) <-chan []news.NewsResource {
	return stream.Once(ctx, []news.NewsResource{})
}

// TopicRepository yields an empty topic list and nothing after.
type TopicRepository struct{}

// TopicsStream returns a stream holding a single empty list.
func (TopicRepository) TopicsStream(ctx context.Context) <-chan []news.Topic {
	return stream.Once(ctx, []news.Topic{})
}
