// Package fixture provides repositories serving static development data:
// topics from a YAML document and news resources from an RSS/Atom
// document. Built-in documents are used unless a file path is given.
package fixture

import (
	"bytes"
	_ "embed"
	"fmt"
	"hash/fnv"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/foryou/internal/domain/news"
	"gopkg.in/yaml.v3"
)

//go:embed data/topics.yaml
var defaultTopics []byte

//go:embed data/news.xml
var defaultNews []byte

type topicsDocument struct {
	Topics []news.Topic `yaml:"topics"`
}

// LoadTopics reads topics from path, or the built-in set when path is empty.
func LoadTopics(path string) ([]news.Topic, error) {
	data, err := read(path, defaultTopics)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics: %w", err)
	}
	return ParseTopics(data)
}

// ParseTopics decodes a YAML topics document. IDs must be unique and names
// non-empty.
func ParseTopics(data []byte) ([]news.Topic, error) {
	var doc topicsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode topics: %w", err)
	}

	seen := make(map[int]struct{}, len(doc.Topics))
	for i, t := range doc.Topics {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("topic #%d (id %d) has no name", i, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate topic id %d", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return doc.Topics, nil
}

// LoadNews reads news resources from path, or the built-in feed when path
// is empty. Item categories are matched against topics by name.
func LoadNews(path string, topics []news.Topic) ([]news.NewsResource, error) {
	data, err := read(path, defaultNews)
	if err != nil {
		return nil, fmt.Errorf("failed to read news: %w", err)
	}
	return ParseNews(data, topics)
}

// ParseNews parses an RSS/Atom/JSON feed into news resources, newest first.
func ParseNews(data []byte, topics []news.Topic) ([]news.NewsResource, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse news feed: %w", err)
	}

	byName := make(map[string]news.Topic, len(topics))
	for _, t := range topics {
		byName[strings.ToLower(t.Name)] = t
	}

	resources := make([]news.NewsResource, 0, len(feed.Items))
	seen := make(map[int]struct{}, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		r := toResource(item, byName)
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate news resource id %d (%q)", r.ID, r.Title)
		}
		seen[r.ID] = struct{}{}
		resources = append(resources, r)
	}

	sort.SliceStable(resources, func(i, j int) bool {
		return resources[i].PublishDate.After(resources[j].PublishDate)
	})
	return resources, nil
}

func toResource(item *gofeed.Item, topics map[string]news.Topic) news.NewsResource {
	r := news.NewsResource{
		ID:             itemID(item),
		Title:          strings.TrimSpace(item.Title),
		Content:        strings.TrimSpace(item.Description),
		URL:            strings.TrimSpace(item.Link),
		HeaderImageURL: headerImage(item),
		Type:           news.Unknown,
	}
	if content := strings.TrimSpace(item.Content); content != "" {
		r.Content = content
	}

	switch {
	case item.PublishedParsed != nil:
		r.PublishDate = item.PublishedParsed.UTC()
	case item.UpdatedParsed != nil:
		r.PublishDate = item.UpdatedParsed.UTC()
	}

	if item.ITunesExt != nil {
		if ep, err := strconv.Atoi(strings.TrimSpace(item.ITunesExt.Episode)); err == nil {
			r.EpisodeID = ep
		}
	}
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Type) > 0 {
		r.Type = news.ParseResourceType(item.DublinCoreExt.Type[0])
	}

	seen := make(map[int]struct{}, len(item.Categories))
	for _, category := range item.Categories {
		t, ok := topics[strings.ToLower(strings.TrimSpace(category))]
		if !ok {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		r.Topics = append(r.Topics, t)
	}

	for _, person := range item.Authors {
		if person == nil || strings.TrimSpace(person.Name) == "" {
			continue
		}
		name := strings.TrimSpace(person.Name)
		r.Authors = append(r.Authors, news.Author{ID: hashID(name), Name: name})
	}
	return r
}

// itemID uses a numeric GUID as is and hashes anything else.
func itemID(item *gofeed.Item) int {
	guid := strings.TrimSpace(item.GUID)
	if id, err := strconv.Atoi(guid); err == nil && id >= 0 {
		return id
	}
	if guid == "" {
		guid = strings.TrimSpace(item.Link)
	}
	if guid == "" {
		guid = item.Title
	}
	return hashID(guid)
}

func hashID(s string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum32() & 0x7fffffff)
}

func headerImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	if media, ok := item.Extensions["media"]; ok {
		for _, key := range []string{"thumbnail", "content"} {
			for _, e := range media[key] {
				if u := e.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}
	return ""
}

func read(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	return os.ReadFile(path)
}
