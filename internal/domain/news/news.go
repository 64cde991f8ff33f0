// Package news defines the core news models shown in the feed.
package news

import (
	"strings"
	"time"
)

// ResourceType tags the kind of content a NewsResource points at.
type ResourceType string

const (
	Video     ResourceType = "Video"
	Article   ResourceType = "Article"
	APIChange ResourceType = "API change"
	Unknown   ResourceType = "Unknown"
)

// ParseResourceType maps a free-form type name to a ResourceType.
func ParseResourceType(s string) ResourceType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "video", "youtube":
		return Video
	case "article", "blog":
		return Article
	case "api change", "api_change", "apichange":
		return APIChange
	default:
		return Unknown
	}
}

// Topic is a subject news resources can be tagged with.
type Topic struct {
	ID               int    `yaml:"id"`
	Name             string `yaml:"name"`
	ShortDescription string `yaml:"short_description"`
	LongDescription  string `yaml:"long_description"`
	URL              string `yaml:"url"`
	ImageURL         string `yaml:"image_url"`
}

// FollowableTopic is a Topic plus whether the user follows it.
type FollowableTopic struct {
	Topic      Topic
	IsFollowed bool
}

// Author is a person credited on a NewsResource.
type Author struct {
	ID       int
	Name     string
	ImageURL string
}

// NewsResource is a single piece of content in the feed.
type NewsResource struct {
	ID             int
	EpisodeID      int
	Title          string
	Content        string
	URL            string
	HeaderImageURL string
	PublishDate    time.Time
	Type           ResourceType
	Topics         []Topic
	Authors        []Author
}

// HasAnyTopic reports whether the resource is tagged with any of the given topic IDs.
func (r NewsResource) HasAnyTopic(ids map[int]struct{}) bool {
	for _, t := range r.Topics {
		if _, ok := ids[t.ID]; ok {
			return true
		}
	}
	return false
}

// SaveableNewsResource is a NewsResource plus whether the user bookmarked it.
type SaveableNewsResource struct {
	NewsResource NewsResource
	IsSaved      bool
}

// FilterByTopics returns the resources tagged with at least one of topicIDs,
// keeping the input order.
func FilterByTopics(resources []NewsResource, topicIDs []int) []NewsResource {
	ids := make(map[int]struct{}, len(topicIDs))
	for _, id := range topicIDs {
		ids[id] = struct{}{}
	}
	out := make([]NewsResource, 0, len(resources))
	for _, r := range resources {
		if r.HasAnyTopic(ids) {
			out = append(out, r)
		}
	}
	return out
}
