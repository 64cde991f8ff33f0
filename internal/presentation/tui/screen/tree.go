package screen

import "github.com/tesso57/foryou/internal/domain/news"

// Node is one item of the feed's vertical list.
type Node interface {
	node()
}

// LoadingIndicator is shown while the feed is loading.
type LoadingIndicator struct {
	Description string
}

// TopicSelection is the onboarding block listing every followable topic
// in a grid with a fixed number of rows.
type TopicSelection struct {
	Title    string
	Subtitle string
	Rows     int
	Toggles  []TopicToggle
}

// TopicToggle is one topic button of the selection grid.
type TopicToggle struct {
	TopicID  int
	Name     string
	Selected bool
	OnClick  func()
}

// ConfirmButton saves the topic selection.
type ConfirmButton struct {
	Label   string
	Enabled bool
	OnClick func()
}

// Activate runs OnClick when the button is enabled.
func (b ConfirmButton) Activate() {
	if b.Enabled && b.OnClick != nil {
		b.OnClick()
	}
}

// NewsCard shows one news resource with its bookmark toggle.
type NewsCard struct {
	Resource         news.NewsResource
	Bookmarked       bool
	OnClick          func()
	OnToggleBookmark func()
}

func (LoadingIndicator) node() {}
func (TopicSelection) node()   {}
func (ConfirmButton) node()    {}
func (NewsCard) node()         {}

// Column returns the grid column of toggle i.
func (s TopicSelection) Column(i int) int {
	if s.Rows <= 0 {
		return i
	}
	return i / s.Rows
}

// Columns splits the toggles into grid columns, filled top to bottom.
func (s TopicSelection) Columns() [][]TopicToggle {
	rows := s.Rows
	if rows <= 0 {
		rows = 1
	}
	cols := make([][]TopicToggle, 0, (len(s.Toggles)+rows-1)/rows)
	for start := 0; start < len(s.Toggles); start += rows {
		end := min(start+rows, len(s.Toggles))
		cols = append(cols, s.Toggles[start:end])
	}
	return cols
}

// Tree is the rendered feed screen: an ordered, scrollable list of nodes.
type Tree struct {
	Items []Node
}

// Cards returns the news cards in list order.
func (t Tree) Cards() []NewsCard {
	var cards []NewsCard
	for _, n := range t.Items {
		if c, ok := n.(NewsCard); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// TopicSelection returns the topic selection block, if rendered.
func (t Tree) TopicSelection() (TopicSelection, bool) {
	for _, n := range t.Items {
		if s, ok := n.(TopicSelection); ok {
			return s, true
		}
	}
	return TopicSelection{}, false
}

// ConfirmButton returns the confirm button, if rendered.
func (t Tree) ConfirmButton() (ConfirmButton, bool) {
	for _, n := range t.Items {
		if b, ok := n.(ConfirmButton); ok {
			return b, true
		}
	}
	return ConfirmButton{}, false
}

// LoadingIndicators counts the loading indicators in the tree.
func (t Tree) LoadingIndicators() int {
	count := 0
	for _, n := range t.Items {
		if _, ok := n.(LoadingIndicator); ok {
			count++
		}
	}
	return count
}
