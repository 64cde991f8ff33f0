// Package theme resolves configured colors into lipgloss colors.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/foryou/internal/application/settings"
)

// Theme is the color palette shared by components.
type Theme struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

// Default matches the configuration defaults.
var Default = Theme{
	Accent: lipgloss.Color("205"),
	Muted:  lipgloss.Color("244"),
	Border: lipgloss.Color("63"),
}

// FromSettings builds a Theme, falling back to Default for empty values.
func FromSettings(cfg settings.ThemeConfig) Theme {
	t := Default
	if cfg.Accent != "" {
		t.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Muted != "" {
		t.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Border != "" {
		t.Border = lipgloss.Color(cfg.Border)
	}
	return t
}
