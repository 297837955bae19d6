// Package snackbar provides the transient error bar component.
package snackbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/newsrack/internal/presentation/tui/textutil"
)

// Props defines the properties for the snackbar component.
type Props struct {
	Visible  bool
	Message  string
	RetryKey string
	Width    int
	Pending  int
}

// Render renders the snackbar component. The bar occupies a single row;
// overlong messages are truncated rather than wrapped.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	text := p.Message
	if p.RetryKey != "" {
		text = fmt.Sprintf("%s  (%s to retry, esc to dismiss)", text, p.RetryKey)
	}
	if p.Pending > 1 {
		text = fmt.Sprintf("%s  [+%d more]", text, p.Pending-1)
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("88")).
		PaddingLeft(1).
		PaddingRight(1)

	if p.Width > 0 {
		text = textutil.Truncate(textutil.SingleLine(text), p.Width-style.GetHorizontalFrameSize())
		style = style.Width(p.Width)
	}
	return style.Render(text)
}
