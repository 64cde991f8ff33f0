// Package usecase contains application-level services.
package usecase

import (
	"context"

	"github.com/tesso57/foryou/internal/domain/news"
)

// NewsRepository streams news resources.
//
// Each stream delivers its current list and then every later change. The
// channel is closed once ctx is done.
type NewsRepository interface {
	NewsResourcesStream(ctx context.Context) <-chan []news.NewsResource
	NewsResourcesStreamByTopics(ctx context.Context, topicIDs []int) <-chan []news.NewsResource
}

// TopicRepository streams the topics a user can follow.
type TopicRepository interface {
	TopicsStream(ctx context.Context) <-chan []news.Topic
}
