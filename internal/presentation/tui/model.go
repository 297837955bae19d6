package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/newsrack/internal/application/settings"
	"github.com/tesso57/newsrack/internal/application/usecase"
	"github.com/tesso57/newsrack/internal/presentation/tui/metrics"
	"github.com/tesso57/newsrack/internal/presentation/tui/state"
	"github.com/tesso57/newsrack/internal/presentation/tui/update"
	"github.com/tesso57/newsrack/internal/presentation/tui/view"
	listview "github.com/tesso57/newsrack/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	posts    *usecase.PostsService
	state    *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, posts *usecase.PostsService) *Model {
	return &Model{
		settings: cfg,
		posts:    posts,
		state:    newModelState(cfg),
	}
}

// Init initializes the model and kicks off the initial fetch.
func (m *Model) Init() tea.Cmd {
	return update.StartRefresh(m.state, m.deps())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case tea.MouseMsg:
		update.HandleMouseMsg(m.state, msg)
	case update.FetchCompletedMsg:
		cmds = append(cmds, update.HandleFetchCompleted(m.state, msg, m.deps()))
	case update.SnackbarTimeoutMsg:
		cmds = append(cmds, update.HandleSnackbarTimeout(m.state, msg, m.deps()))
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state.ListFocused() {
		m.state.ArticleList, cmd = m.state.ArticleList.Update(msg)
		m.state.Scroll.For(state.ListPaneKey).Offset = m.state.ArticleList.Index()
		cmds = append(cmds, cmd)
	} else {
		m.state.Detail, cmd = m.state.Detail.Update(msg)
		if a, ok := m.state.ActiveDetailArticle(); ok {
			m.state.Scroll.For(a.ID).Offset = m.state.Detail.YOffset
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Posts:       m.posts,
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		ArticleList: newArticleList(cfg),
		Detail:      newViewport(),
		Help:        help.New(),
		Spinner:     newSpinner(cfg),
		Keys:        state.NewKeyMap(cfg.KeyMap),
		Breakpoint:  breakpoint(cfg),
		Scroll:      state.NewScrollRegistry(),
	}

	st.ArticleList.KeyMap.PrevPage = st.Keys.UpPage
	st.ArticleList.KeyMap.NextPage = st.Keys.DownPage

	return st
}

func newArticleList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewArticleDelegate(lipgloss.Color(cfg.Theme.SectionName)), 0, 0)
	l.Title = "Articles"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}

func breakpoint(cfg settings.Settings) int {
	if cfg.Layout.Breakpoint > 0 {
		return cfg.Layout.Breakpoint
	}
	return metrics.DefaultBreakpoint
}
