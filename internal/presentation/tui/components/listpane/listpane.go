// Package listpane provides the article list pane component.
package listpane

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the list pane component.
type Props struct {
	View     string
	Width    int
	Height   int
	Title    string
	Active   bool
	Bordered bool
}

// Render renders the list pane component.
func Render(p Props) string {
	paneStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height)

	if p.Bordered {
		paneStyle = paneStyle.
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("63"))
		if p.Active {
			paneStyle = paneStyle.BorderForeground(lipgloss.Color("205"))
		}
	}

	titleStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingBottom(1).
		Foreground(lipgloss.Color("205"))

	return paneStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(p.Title),
		p.View,
	))
}
