package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/newsrack/internal/domain/news"
)

// ModelState holds the presentation state for the screen.
type ModelState struct {
	ArticleList list.Model
	Detail      viewport.Model
	Help        help.Model
	Spinner     spinner.Model
	Keys        KeyMap

	Width      int
	Height     int
	Breakpoint int

	Snapshot news.Snapshot

	// SelectedArticleID is the user's explicit selection; empty until
	// an article has been opened.
	SelectedArticleID string
	// ListTouchedLast is true when the user's most recent interaction
	// was with the list pane rather than the detail pane.
	ListTouchedLast bool
	// LastDetailInteractionID records the detail article that was most
	// recently interacted with. Diagnostics only; never feeds mode
	// selection.
	LastDetailInteractionID string

	Scroll *ScrollRegistry

	Loading       bool
	Overlay       Overlay
	StatusMessage string

	// SnackbarErrorID is the id of the error currently surfaced, zero
	// when none. SnackbarSeq invalidates in-flight timeout ticks when a
	// presentation is superseded or resolved.
	SnackbarErrorID int64
	SnackbarSeq     int
}

// Mode returns the pane arrangement for the current state.
func (s *ModelState) Mode() Mode {
	return ResolveMode(s.Width, s.Breakpoint, s.ListTouchedLast, s.SelectedArticleID != "")
}

// ActiveDetailArticle resolves the article for the detail pane.
func (s *ModelState) ActiveDetailArticle() (news.Article, bool) {
	return ActiveDetail(s.Snapshot, s.SelectedArticleID)
}

// CurrentError returns the pending error currently being surfaced, i.e.
// the head of the queue. The same entry is returned until resolved.
func (s *ModelState) CurrentError() (news.FetchError, bool) {
	if len(s.Snapshot.PendingErrors) == 0 {
		return news.FetchError{}, false
	}
	return s.Snapshot.PendingErrors[0], true
}

// ListFocused reports whether key input is routed to the list pane.
func (s *ModelState) ListFocused() bool {
	switch s.Mode() {
	case ListOnly:
		return true
	case DetailOnly:
		return false
	default:
		return s.ListTouchedLast || s.SelectedArticleID == ""
	}
}
