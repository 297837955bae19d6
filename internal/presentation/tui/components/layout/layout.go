// Package layout composes panes into the final screen.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component. An empty pane
// string means the pane is absent from the current arrangement.
type Props struct {
	List     string
	Detail   string
	Snackbar string
	Footer   string
}

// Render joins the visible panes horizontally and stacks the snackbar
// and footer below them.
func Render(p Props) string {
	var content string
	switch {
	case p.List != "" && p.Detail != "":
		content = lipgloss.JoinHorizontal(lipgloss.Top, p.List, p.Detail)
	case p.Detail != "":
		content = p.Detail
	default:
		content = p.List
	}

	rows := []string{content}
	if p.Snackbar != "" {
		rows = append(rows, p.Snackbar)
	}
	if p.Footer != "" {
		rows = append(rows, p.Footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
