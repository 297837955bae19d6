package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/newsrack/internal/application/usecase"
	"github.com/tesso57/newsrack/internal/domain/news"
	"github.com/tesso57/newsrack/internal/presentation/tui/intent"
	"github.com/tesso57/newsrack/internal/presentation/tui/presenter"
	"github.com/tesso57/newsrack/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Posts       *usecase.PostsService
	OpenBrowser func(string) error
}

// FetchCompletedMsg is emitted after a fetch attempt finishes.
type FetchCompletedMsg struct {
	Outcome usecase.FetchOutcome
}

// FetchCmd creates a command that performs the network fetch off the
// event loop. The outcome is folded into service state on arrival.
func FetchCmd(posts *usecase.PostsService) tea.Cmd {
	return func() tea.Msg {
		return FetchCompletedMsg{Outcome: posts.Fetch()}
	}
}

// StartRefresh marks a refresh in flight and returns the fetch command.
func StartRefresh(s *state.ModelState, deps Deps) tea.Cmd {
	s.Snapshot = deps.Posts.BeginRefresh()
	if s.Snapshot.IsInitialLoad {
		s.Loading = true
	}
	s.StatusMessage = ""
	return tea.Batch(s.Spinner.Tick, FetchCmd(deps.Posts))
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	ReconcileSelection(s)
	UpdateSizes(s)
	refreshDetailContent(s)
}

// HandleFetchCompleted folds a fetch outcome into state.
func HandleFetchCompleted(s *state.ModelState, msg FetchCompletedMsg, deps Deps) tea.Cmd {
	s.Loading = false
	applySnapshot(s, deps.Posts.ApplyFetch(msg.Outcome))
	if msg.Outcome.Err == nil {
		s.StatusMessage = fetchStatusMessage(msg.Outcome.Report)
	}
	return SyncSnackbar(s, deps)
}

// HandleKeyMsg processes key input. The second return value reports
// whether the key was consumed.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Overlay == state.OverlayQuit {
		return handleQuitOverlay(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)

	// The snackbar captures its own keys while visible.
	if s.SnackbarErrorID != 0 {
		switch parsed.Type {
		case intent.Retry:
			return RetryCurrentError(s, deps), true
		case intent.Back:
			return DismissCurrentError(s, deps), true
		}
	}

	switch parsed.Type {
	case intent.Quit:
		s.Overlay = state.OverlayQuit
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case intent.Refresh:
		return StartRefresh(s, deps), true
	case intent.Back:
		if s.Mode() == state.DetailOnly {
			ReturnToList(s)
			return nil, true
		}
		// Propagates to the outer host: at the top level that is the
		// quit confirmation.
		s.Overlay = state.OverlayQuit
		return nil, true
	case intent.Open:
		if s.ListFocused() {
			if item, ok := selectedArticleItem(s); ok {
				OpenArticle(s, item.ID)
			}
			return nil, true
		}
		return browseActiveArticle(s, deps), true
	case intent.Favorite:
		return toggleFavorite(s, deps), true
	case intent.Browse:
		return browseActiveArticle(s, deps), true
	}
	return nil, false
}

// HandleMouseMsg tracks which pane the user touched last. Only the
// press that starts a gesture qualifies; motion and release within the
// same gesture never rewrite the flag.
func HandleMouseMsg(s *state.ModelState, msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	mode := s.Mode()
	touchedList := false
	switch mode {
	case state.ListOnly:
		touchedList = true
	case state.DetailOnly:
		touchedList = false
	case state.ListAndDetail:
		touchedList = msg.X < listPaneBoundary(s)
	}

	if !touchedList {
		if a, ok := s.ActiveDetailArticle(); ok {
			s.LastDetailInteractionID = a.ID
		}
	}

	// Avoid redundant writes: only a change is recorded.
	if s.ListTouchedLast != touchedList {
		s.ListTouchedLast = touchedList
		if s.Mode() != mode {
			UpdateSizes(s)
			refreshDetailContent(s)
		}
	}
}

// OpenArticle selects an article and moves focus to the detail pane.
func OpenArticle(s *state.ModelState, id string) {
	persistListScroll(s)
	persistDetailScroll(s)

	s.SelectedArticleID = id
	s.ListTouchedLast = false
	s.LastDetailInteractionID = id

	refreshDetailContent(s)
	UpdateSizes(s)
}

// ReturnToList moves focus back to the list pane, preserving the detail
// scroll position for the next visit.
func ReturnToList(s *state.ModelState) {
	persistDetailScroll(s)
	s.ListTouchedLast = true
	restoreListScroll(s)
	UpdateSizes(s)
}

// ReconcileSelection forces a return to the list when a detail-only
// arrangement would show a selection that no longer exists, e.g. after
// a refresh removed the article. Without this the screen would be
// stuck on a blank detail pane.
func ReconcileSelection(s *state.ModelState) {
	if s.SelectedArticleID == "" {
		return
	}
	if _, ok := s.Snapshot.Article(s.SelectedArticleID); ok {
		return
	}
	if s.Mode() == state.DetailOnly {
		s.ListTouchedLast = true
	}
}

func applySnapshot(s *state.ModelState, snap news.Snapshot) {
	s.Snapshot = snap
	presenter.ApplyArticleList(&s.ArticleList, snap)
	ReconcileSelection(s)
	UpdateSizes(s)
	refreshDetailContent(s)
}

func handleQuitOverlay(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Overlay = state.OverlayNone
		return nil, true
	}
	return nil, true
}

func toggleFavorite(s *state.ModelState, deps Deps) tea.Cmd {
	var id string
	if s.ListFocused() {
		if item, ok := selectedArticleItem(s); ok {
			id = item.ID
		}
	} else if a, ok := s.ActiveDetailArticle(); ok {
		id = a.ID
	}
	if id == "" {
		return nil
	}

	snap, err := deps.Posts.ToggleFavorite(id)
	applySnapshot(s, snap)
	if err != nil {
		s.StatusMessage = "Could not save favorite"
	}
	return nil
}

func browseActiveArticle(s *state.ModelState, deps Deps) tea.Cmd {
	if deps.OpenBrowser == nil {
		return nil
	}
	if a, ok := s.ActiveDetailArticle(); ok && a.Link != "" {
		s.LastDetailInteractionID = a.ID
		_ = deps.OpenBrowser(a.Link)
	}
	return nil
}

func selectedArticleItem(s *state.ModelState) (*presenter.Item, bool) {
	item, ok := s.ArticleList.SelectedItem().(*presenter.Item)
	if !ok || item == nil || item.IsSectionHeader() {
		return nil, false
	}
	return item, true
}

func refreshDetailContent(s *state.ModelState) {
	article, ok := s.ActiveDetailArticle()
	if !ok {
		s.Detail.SetContent("")
		return
	}
	s.Detail.SetContent(BuildDetailContent(article, s.Snapshot.IsFavorite(article.ID), s.Detail.Width))
	s.Detail.SetYOffset(s.Scroll.For(article.ID).Offset)
}

func persistDetailScroll(s *state.ModelState) {
	if a, ok := s.ActiveDetailArticle(); ok {
		s.Scroll.For(a.ID).Offset = s.Detail.YOffset
	}
}

func persistListScroll(s *state.ModelState) {
	s.Scroll.For(state.ListPaneKey).Offset = s.ArticleList.Index()
}

func restoreListScroll(s *state.ModelState) {
	idx := s.Scroll.For(state.ListPaneKey).Offset
	if idx >= 0 && idx < len(s.ArticleList.Items()) {
		s.ArticleList.Select(idx)
	}
}

func fetchStatusMessage(report usecase.FetchReport) string {
	if report.Requested <= 1 {
		return ""
	}
	if report.TimedOut > 0 {
		if report.TimedOut == 1 {
			return "1 feed timed out"
		}
		return fmt.Sprintf("%d feeds timed out", report.TimedOut)
	}
	if report.Failed > 0 {
		if report.Failed == 1 {
			return "1 feed failed to load"
		}
		return fmt.Sprintf("%d feeds failed to load", report.Failed)
	}
	return ""
}
