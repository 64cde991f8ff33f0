// Package presenter builds view models for the TUI.
package presenter

import (
	"strings"

	"github.com/tesso57/foryou/internal/domain/news"
	"github.com/tesso57/foryou/internal/presentation/tui/screen"
	"github.com/tesso57/foryou/internal/presentation/tui/textutil"
)

const dateLayout = "Jan 2, 2006"

// Card is the display model of one news card.
type Card struct {
	Title      string
	Meta       string
	Content    string
	Topics     string
	URL        string
	Bookmarked bool
}

// NewCard formats a rendered news card for display.
func NewCard(c screen.NewsCard) Card {
	r := c.Resource
	return Card{
		Title:      textutil.SingleLine(r.Title),
		Meta:       Meta(r),
		Content:    textutil.SingleLine(r.Content),
		Topics:     TopicLine(r.Topics),
		URL:        r.URL,
		Bookmarked: c.Bookmarked,
	}
}

// Meta returns the "date • type • authors" line of a resource, skipping
// the parts that are unknown.
func Meta(r news.NewsResource) string {
	parts := make([]string, 0, 3)
	if !r.PublishDate.IsZero() {
		parts = append(parts, r.PublishDate.Format(dateLayout))
	}
	if r.Type != "" && r.Type != news.Unknown {
		parts = append(parts, string(r.Type))
	}
	if names := authorNames(r.Authors); names != "" {
		parts = append(parts, "by "+names)
	}
	return strings.Join(parts, " • ")
}

// TopicLine renders topic names as hashtags.
func TopicLine(topics []news.Topic) string {
	tags := make([]string, 0, len(topics))
	for _, t := range topics {
		name := strings.Join(strings.Fields(t.Name), "")
		if name == "" {
			continue
		}
		tags = append(tags, "#"+name)
	}
	return strings.Join(tags, " ")
}

// BookmarkIcon returns the bookmark marker for a card.
func BookmarkIcon(saved bool) string {
	if saved {
		return "★"
	}
	return "☆"
}

// ToggleLabel returns the checkbox label of a topic toggle.
func ToggleLabel(t screen.TopicToggle) string {
	mark := "[ ]"
	if t.Selected {
		mark = "[x]"
	}
	return mark + " " + textutil.SingleLine(t.Name)
}

func authorNames(authors []news.Author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if n := strings.TrimSpace(a.Name); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", ")
}
