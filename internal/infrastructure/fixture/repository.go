package fixture

import (
	"context"
	"fmt"
	"slices"

	"github.com/tesso57/foryou/internal/application/stream"
	"github.com/tesso57/foryou/internal/domain/news"
)

// TopicRepository serves a fixed topic list.
type TopicRepository struct {
	topics []news.Topic
}

// NewTopicRepository constructs a TopicRepository.
func NewTopicRepository(topics []news.Topic) *TopicRepository {
	return &TopicRepository{topics: slices.Clone(topics)}
}

// TopicsStream emits the topics once.
func (r *TopicRepository) TopicsStream(ctx context.Context) <-chan []news.Topic {
	return stream.Once(ctx, slices.Clone(r.topics))
}

// NewsRepository serves a fixed list of news resources.
type NewsRepository struct {
	resources []news.NewsResource
}

// NewNewsRepository constructs a NewsRepository.
func NewNewsRepository(resources []news.NewsResource) *NewsRepository {
	return &NewsRepository{resources: slices.Clone(resources)}
}

// NewsResourcesStream emits every resource once.
func (r *NewsRepository) NewsResourcesStream(ctx context.Context) <-chan []news.NewsResource {
	return stream.Once(ctx, slices.Clone(r.resources))
}

// NewsResourcesStreamByTopics emits the resources tagged with any of
// topicIDs once.
func (r *NewsRepository) NewsResourcesStreamByTopics(ctx context.Context, topicIDs []int) <-chan []news.NewsResource {
	return stream.Once(ctx, news.FilterByTopics(r.resources, topicIDs))
}

// Open loads both fixture documents and returns repositories over them.
// Empty paths select the built-in documents.
func Open(topicsPath, newsPath string) (*TopicRepository, *NewsRepository, error) {
	topics, err := LoadTopics(topicsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: %w", err)
	}
	resources, err := LoadNews(newsPath, topics)
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: %w", err)
	}
	return NewTopicRepository(topics), NewNewsRepository(resources), nil
}
