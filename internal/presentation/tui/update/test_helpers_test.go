package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/newsrack/internal/application/settings"
	"github.com/tesso57/newsrack/internal/application/usecase"
	"github.com/tesso57/newsrack/internal/domain/news"
	"github.com/tesso57/newsrack/internal/presentation/tui/metrics"
	"github.com/tesso57/newsrack/internal/presentation/tui/state"
)

type fetcherFunc func(urls []string, opt usecase.FetchOptions) ([]news.Article, usecase.FetchReport, error)

func (f fetcherFunc) FetchAll(urls []string, opt usecase.FetchOptions) ([]news.Article, usecase.FetchReport, error) {
	return f(urls, opt)
}

type memFavorites struct {
	stored map[string]bool
}

func (m *memFavorites) Load() (map[string]bool, error) {
	out := make(map[string]bool, len(m.stored))
	for id := range m.stored {
		out[id] = true
	}
	return out, nil
}

func (m *memFavorites) Set(articleID string, favorite bool) error {
	if m.stored == nil {
		m.stored = map[string]bool{}
	}
	if favorite {
		m.stored[articleID] = true
	} else {
		delete(m.stored, articleID)
	}
	return nil
}

func testArticles(n int) []news.Article {
	articles := make([]news.Article, n)
	for i := range articles {
		articles[i] = news.Article{
			ID:      fmt.Sprintf("a%d", i),
			Title:   fmt.Sprintf("Article %d", i),
			Link:    fmt.Sprintf("https://example.com/%d", i),
			Content: strings.Repeat(fmt.Sprintf("Paragraph of article %d.\n", i), 40),
		}
	}
	return articles
}

func newTestKeys() state.KeyMap {
	return state.NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", Left: "h", Right: "l",
		Open: "enter", Back: "esc", Quit: "q",
		Refresh: "r", Favorite: "f", Browse: "o", Retry: "R",
		UpPage: "pgup", DownPage: "pgdn", Top: "g", Bottom: "G",
	})
}

func newTestState(width, height int) *state.ModelState {
	return &state.ModelState{
		ArticleList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		Detail:      viewport.New(0, 0),
		Help:        help.New(),
		Spinner:     spinner.New(),
		Keys:        newTestKeys(),
		Width:       width,
		Height:      height,
		Breakpoint:  metrics.DefaultBreakpoint,
		Scroll:      state.NewScrollRegistry(),
	}
}

// newTestDeps wires a posts service over an in-memory fetcher. The
// returned function flips the fetcher into failure mode.
func newTestDeps(articles []news.Article) (Deps, func(error)) {
	var fetchErr error
	fetcher := fetcherFunc(func(urls []string, _ usecase.FetchOptions) ([]news.Article, usecase.FetchReport, error) {
		if fetchErr != nil {
			return nil, usecase.FetchReport{Requested: len(urls), Failed: len(urls)}, fetchErr
		}
		return articles, usecase.FetchReport{Requested: len(urls), Succeeded: len(urls)}, nil
	})
	posts := usecase.NewPostsService(fetcher, &memFavorites{}, []string{"https://a.example/rss"}, usecase.FetchOptions{})
	deps := Deps{Posts: posts, OpenBrowser: func(string) error { return nil }}
	return deps, func(err error) { fetchErr = err }
}

// loadSnapshot fetches and applies articles so the state has content.
func loadSnapshot(s *state.ModelState, deps Deps) {
	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)
}
