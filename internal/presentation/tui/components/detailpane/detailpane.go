// Package detailpane provides the article detail pane component.
package detailpane

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the detail pane component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
}

// Render renders the detail pane component.
func Render(p Props) string {
	paneStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1)

	content := p.Body
	if p.Header != "" {
		if p.Body != "" {
			content = p.Header + "\n" + p.Body
		} else {
			content = p.Header
		}
	}
	return paneStyle.Render(content)
}
