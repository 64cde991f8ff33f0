// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines       = 2
	ItemGapLines      = 1
	HorizontalPadding = 2

	TopicColumnWidth = 24
	TopicColumnGap   = 1
	CardMaxWidth     = 96
	CardMinWidth     = 20
	CardContentLines = 3
)
