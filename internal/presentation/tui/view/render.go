// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/foryou/internal/presentation/tui/components/header"
	"github.com/tesso57/foryou/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/foryou/internal/presentation/tui/components/main"
)

// Props aggregates properties for all UI components.
type Props struct {
	Header header.Props
	Main   mainview.Props
	Footer string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	return layout.Render(layout.Props{
		Header: header.Render(p.Header),
		Main:   mainview.Render(p.Main),
		Footer: p.Footer,
	})
}
