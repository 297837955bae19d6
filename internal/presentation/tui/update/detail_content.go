package update

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/newsrack/internal/domain/news"
	"github.com/tesso57/newsrack/internal/presentation/tui/textutil"
)

// BuildDetailContent renders the detail pane body for one article,
// wrapped to the given width.
func BuildDetailContent(article news.Article, favorite bool, width int) string {
	var b strings.Builder

	title := textutil.SingleLine(article.Title)
	if favorite {
		title = "★ " + title
	}
	b.WriteString(title)
	b.WriteString("\n")

	var meta []string
	if article.Source != "" {
		meta = append(meta, article.Source)
	}
	if article.Published != "" {
		meta = append(meta, article.Published)
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " | "))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", clampMin(min(width, 40), 1)))
	b.WriteString("\n\n")

	body := strings.TrimSpace(article.Content)
	if body == "" {
		body = strings.TrimSpace(article.Subtitle)
	}
	if body == "" {
		body = "(No content. Open in browser to read the full article.)"
	}
	b.WriteString(body)

	if width <= 0 {
		return b.String()
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
