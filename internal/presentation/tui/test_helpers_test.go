package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/newsrack/internal/application/settings"
	"github.com/tesso57/newsrack/internal/application/usecase"
	"github.com/tesso57/newsrack/internal/domain/news"
	"github.com/tesso57/newsrack/internal/presentation/tui/update"
)

type stubFetcher struct {
	mock.Mock
	articles []news.Article
	err      error
}

func (s *stubFetcher) FetchAll(urls []string, opt usecase.FetchOptions) ([]news.Article, usecase.FetchReport, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(urls, opt)
		articles, _ := args.Get(0).([]news.Article)
		report, _ := args.Get(1).(usecase.FetchReport)
		return articles, report, args.Error(2)
	}
	if s.err != nil {
		return nil, usecase.FetchReport{Requested: len(urls), Failed: len(urls)}, s.err
	}
	return s.articles, usecase.FetchReport{Requested: len(urls), Succeeded: len(urls)}, nil
}

type stubFavoritesRepo struct {
	mock.Mock
	stored map[string]bool
}

func (s *stubFavoritesRepo) Load() (map[string]bool, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called()
		stored, _ := args.Get(0).(map[string]bool)
		return stored, args.Error(1)
	}
	out := make(map[string]bool, len(s.stored))
	for id := range s.stored {
		out[id] = true
	}
	return out, nil
}

func (s *stubFavoritesRepo) Set(articleID string, favorite bool) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(articleID, favorite)
		return args.Error(0)
	}
	if s.stored == nil {
		s.stored = map[string]bool{}
	}
	if favorite {
		s.stored[articleID] = true
	} else {
		delete(s.stored, articleID)
	}
	return nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		Feeds: []string{"http://example.com/rss"},
		KeyMap: settings.KeyMapConfig{
			Up: "k", Down: "j", Left: "h", Right: "l",
			Open: "enter", Back: "esc", Quit: "q",
			Refresh: "r", Favorite: "f", Browse: "o", Retry: "R",
			UpPage: "pgup", DownPage: "pgdn", Top: "g", Bottom: "G",
		},
		Theme:  settings.ThemeConfig{Accent: "205", SectionName: "244", Favorite: "220"},
		Layout: settings.LayoutConfig{Breakpoint: 100},
	}
}

func testArticles(n int) []news.Article {
	articles := make([]news.Article, n)
	for i := range articles {
		articles[i] = news.Article{
			ID:      fmt.Sprintf("a%d", i),
			Title:   fmt.Sprintf("Article %d", i),
			Link:    fmt.Sprintf("https://example.com/%d", i),
			Content: strings.Repeat(fmt.Sprintf("Paragraph of article %d.\n", i), 20),
		}
	}
	return articles
}

func newTestModel(cfg settings.Settings, fetcher usecase.ArticleFetcher, favorites usecase.FavoritesRepository) *Model {
	posts := usecase.NewPostsService(fetcher, favorites, cfg.Feeds, usecase.FetchOptions{})
	return NewModel(cfg, posts)
}

// loadedTestModel builds a model with articles fetched and a terminal
// size applied.
func loadedTestModel(width, height, articleCount int) *Model {
	m := newTestModel(testSettings(), &stubFetcher{articles: testArticles(articleCount)}, &stubFavoritesRepo{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m = tm.(*Model)
	tm, _ = m.Update(update.FetchCompletedMsg{Outcome: m.posts.Fetch()})
	return tm.(*Model)
}
