// Package modal provides full-screen modal overlays.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind identifies which modal is being shown.
type Kind int

const (
	Quit Kind = iota
	Help
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
}

// Render renders the modal centered in the available area.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2)

	box := boxStyle.Render(p.Body)
	if p.Width <= 0 || p.Height <= 0 {
		return box
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, box)
}
