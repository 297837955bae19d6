// Command newsrack is an adaptive terminal news reader.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/newsrack/internal/application/usecase"
	"github.com/tesso57/newsrack/internal/config"
	"github.com/tesso57/newsrack/internal/infrastructure/favorites"
	"github.com/tesso57/newsrack/internal/infrastructure/feed"
	"github.com/tesso57/newsrack/internal/presentation/tui"
)

// CLI defines the command line interface.
type CLI struct {
	Config string `kong:"help='Path to config file',type='path'"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("newsrack"),
		kong.Description("An adaptive list/detail news reader for the terminal."),
	)

	store, err := config.Load(cli.Config)
	kctx.FatalIfErrorf(err)
	cfg := store.Settings

	// Favorites are a convenience: a broken database must not keep the
	// reader from starting.
	var favRepo usecase.FavoritesRepository
	favStore, err := favorites.Open(cfg.FavoritesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "newsrack: favorites unavailable: %v\n", err)
	} else {
		favRepo = favStore
		defer func() { _ = favStore.Close() }()
	}

	posts := usecase.NewPostsService(feed.Fetcher{}, favRepo, cfg.Feeds, usecase.FetchOptions{
		PerFeedTimeout: 15 * time.Second,
		BatchTimeout:   45 * time.Second,
	})

	p := tea.NewProgram(
		tui.NewModel(cfg, posts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "newsrack: %v\n", err)
		os.Exit(1)
	}
}
