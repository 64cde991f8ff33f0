package screen

// Target identifies one activatable control of a Tree: a topic toggle, the
// confirm button or a news card.
type Target struct {
	Item    int
	Control int // toggle index inside a TopicSelection, -1 otherwise
}

// NoTarget is returned when a tree has nothing to focus.
var NoTarget = Target{Item: -1, Control: -1}

// Targets lists the activatable controls in display order.
func (t Tree) Targets() []Target {
	var targets []Target
	for i, n := range t.Items {
		switch v := n.(type) {
		case TopicSelection:
			for j := range v.Toggles {
				targets = append(targets, Target{Item: i, Control: j})
			}
		case ConfirmButton, NewsCard:
			targets = append(targets, Target{Item: i, Control: -1})
		}
	}
	return targets
}

// Activate performs the primary action of target: toggling a topic,
// confirming the selection or opening a card's link. It reports whether
// target pointed at a control.
func (t Tree) Activate(target Target) bool {
	if target.Item < 0 || target.Item >= len(t.Items) {
		return false
	}
	switch v := t.Items[target.Item].(type) {
	case TopicSelection:
		if target.Control < 0 || target.Control >= len(v.Toggles) {
			return false
		}
		call(v.Toggles[target.Control].OnClick)
		return true
	case ConfirmButton:
		v.Activate()
		return true
	case NewsCard:
		call(v.OnClick)
		return true
	}
	return false
}

// ToggleBookmark flips the bookmark of the card at target. It reports
// whether target pointed at a card.
func (t Tree) ToggleBookmark(target Target) bool {
	if target.Item < 0 || target.Item >= len(t.Items) {
		return false
	}
	card, ok := t.Items[target.Item].(NewsCard)
	if !ok {
		return false
	}
	call(card.OnToggleBookmark)
	return true
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
