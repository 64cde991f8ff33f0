package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// FooterText returns the footer content: the status line, if any, above
// the help text.
func FooterText(statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders the short help for keys.
func FooterHelpText(h help.Model, keys KeyMap) string {
	return h.View(&keys)
}
