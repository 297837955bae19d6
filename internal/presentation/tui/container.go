// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/tesso57/newsrack/internal/presentation/tui/components/detailpane"
	"github.com/tesso57/newsrack/internal/presentation/tui/components/header"
	"github.com/tesso57/newsrack/internal/presentation/tui/components/listpane"
	"github.com/tesso57/newsrack/internal/presentation/tui/components/modal"
	"github.com/tesso57/newsrack/internal/presentation/tui/components/snackbar"
	"github.com/tesso57/newsrack/internal/presentation/tui/metrics"
	"github.com/tesso57/newsrack/internal/presentation/tui/state"
	"github.com/tesso57/newsrack/internal/presentation/tui/textutil"
	"github.com/tesso57/newsrack/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	mode := m.state.Mode()
	return view.Props{
		ShowList:   mode.ShowsList(),
		ShowDetail: mode.ShowsDetail(),
		List:       m.buildListProps(mode),
		Header:     m.buildHeaderProps(mode),
		Detail:     m.buildDetailProps(mode),
		Snackbar:   m.buildSnackbarProps(),
		Modal:      m.buildModalProps(),
		Footer:     m.buildFooterProps(),
	}
}

func (m *Model) buildListProps(mode state.Mode) listpane.Props {
	return listpane.Props{
		View:     m.state.ArticleList.View(),
		Width:    m.state.ArticleList.Width(),
		Height:   m.state.ArticleList.Height(),
		Title:    "Newsrack",
		Active:   m.state.ListFocused(),
		Bordered: mode == state.ListAndDetail,
	}
}

func (m *Model) buildHeaderProps(mode state.Mode) header.Props {
	if !mode.ShowsDetail() {
		return header.Props{}
	}
	article, ok := m.state.ActiveDetailArticle()
	if !ok {
		return header.Props{}
	}

	availableWidth := m.state.Detail.Width - metrics.HeaderWidthPadding
	source := article.Source
	if source == "" {
		source = article.Title
	}
	return header.Props{
		Visible: true,
		Link:    textutil.HeaderLine(article.Link, availableWidth),
		Source:  textutil.HeaderLine(source, availableWidth),
	}
}

func (m *Model) buildDetailProps(mode state.Mode) detailpane.Props {
	var body string
	switch {
	case m.state.Loading:
		body = fmt.Sprintf("\n\n   %s Loading articles...", m.state.Spinner.View())
	default:
		body = m.state.Detail.View()
	}

	headerHeight := 0
	if mode.ShowsDetail() {
		headerHeight = metrics.HeaderLines
	}

	return detailpane.Props{
		Width:  m.state.Detail.Width,
		Height: m.state.Detail.Height + headerHeight,
		Header: "", // Filled by Render from the header props.
		Body:   body,
	}
}

func (m *Model) buildSnackbarProps() snackbar.Props {
	if m.state.SnackbarErrorID == 0 {
		return snackbar.Props{}
	}
	current, ok := m.state.CurrentError()
	if !ok || current.ID != m.state.SnackbarErrorID {
		return snackbar.Props{}
	}
	return snackbar.Props{
		Visible:  true,
		Message:  current.Message,
		RetryKey: m.settings.KeyMap.Retry,
		Width:    m.state.Width,
		Pending:  len(m.state.Snapshot.PendingErrors),
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Overlay == state.OverlayQuit {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Snapshot.IsRefreshing, m.state.StatusMessage, helpText)
}
