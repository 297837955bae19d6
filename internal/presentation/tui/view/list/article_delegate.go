// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ArticleItem interface for items that can be rendered by ArticleDelegate.
type ArticleItem interface {
	list.Item
	Title() string
	IsSectionHeader() bool
}

// ArticleDelegate handles rendering of article rows and the bucket
// section headers interleaved with them.
type ArticleDelegate struct {
	Styles      list.DefaultItemStyles
	HeaderStyle lipgloss.Style
}

// NewArticleDelegate creates a new ArticleDelegate.
func NewArticleDelegate(sectionColor lipgloss.Color) *ArticleDelegate {
	return &ArticleDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
		HeaderStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(sectionColor).
			PaddingLeft(2),
	}
}

// Height returns the height of the item.
func (d *ArticleDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *ArticleDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *ArticleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *ArticleDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(ArticleItem)
	if !ok {
		return
	}

	if i.IsSectionHeader() {
		renderItemText(w, d.HeaderStyle, truncateItemText(m, d.HeaderStyle, i.Title()))
		return
	}

	style := itemStyle(d.Styles, m, index)
	renderItemText(w, style, truncateItemText(m, style, i.Title()))
}
