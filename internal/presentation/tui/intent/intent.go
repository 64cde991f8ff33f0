// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/foryou/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Up
	Down
	Left
	Right
	PageUp
	PageDown
	Top
	Bottom
	Activate
	Bookmark
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case msg.Type == tea.KeyCtrlC || key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Up}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Down}
	case key.Matches(msg, keys.Left):
		return Intent{Type: Left}
	case key.Matches(msg, keys.Right):
		return Intent{Type: Right}
	case key.Matches(msg, keys.UpPage):
		return Intent{Type: PageUp}
	case key.Matches(msg, keys.DownPage):
		return Intent{Type: PageDown}
	case key.Matches(msg, keys.Top):
		return Intent{Type: Top}
	case key.Matches(msg, keys.Bottom):
		return Intent{Type: Bottom}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Activate}
	case key.Matches(msg, keys.Bookmark):
		return Intent{Type: Bookmark}
	default:
		return Intent{Type: None}
	}
}
