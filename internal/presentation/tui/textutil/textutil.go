// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// WrapLines word-wraps text to width and keeps at most maxLines lines,
// marking the last kept line with an ellipsis when text was cut.
func WrapLines(text string, width, maxLines int) []string {
	text = SingleLine(text)
	if text == "" || width <= 0 || maxLines <= 0 {
		return nil
	}
	lines := strings.Split(ansi.Wrap(text, width, " -"), "\n")
	if len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if ansi.StringWidth(last)+3 > width {
		last = ansi.Truncate(last, width-3, "")
	}
	lines[maxLines-1] = last + "..."
	return lines
}
