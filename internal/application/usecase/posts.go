// Package usecase contains application-level services.
package usecase

import (
	"strings"
	"time"

	"github.com/tesso57/newsrack/internal/domain/news"
)

// FetchOptions controls article fetching.
type FetchOptions struct {
	PerFeedTimeout time.Duration
	BatchTimeout   time.Duration
}

// FetchReport summarizes the outcome of one aggregate fetch.
type FetchReport struct {
	Requested int
	Succeeded int
	Failed    int
	TimedOut  int
}

// ArticleFetcher abstracts article retrieval from the configured feeds.
type ArticleFetcher interface {
	FetchAll(urls []string, opt FetchOptions) ([]news.Article, FetchReport, error)
}

// FavoritesRepository abstracts favorite-membership persistence.
type FavoritesRepository interface {
	Load() (map[string]bool, error)
	Set(articleID string, favorite bool) error
}

// FetchOutcome is the raw result of one fetch attempt. It carries no
// service state, so it is safe to produce off the event loop.
type FetchOutcome struct {
	Articles []news.Article
	Report   FetchReport
	Err      error
}

// PostsService owns the article snapshot lifecycle: fetching, favorite
// membership, and the pending-error queue. All mutating methods must be
// called from the event loop; only Fetch may run concurrently.
type PostsService struct {
	Fetcher   ArticleFetcher
	Favorites FavoritesRepository
	Feeds     []string
	Options   FetchOptions

	articles    []news.Article
	favoriteIDs map[string]bool
	pending     *news.ErrorQueue
	errSeq      int64
	fetchedOnce bool
	refreshing  bool
}

// NewPostsService constructs a PostsService and loads persisted
// favorites. A favorites load failure is not fatal: the service starts
// with an empty set.
func NewPostsService(fetcher ArticleFetcher, favorites FavoritesRepository, feeds []string, opt FetchOptions) *PostsService {
	favoriteIDs := map[string]bool{}
	if favorites != nil {
		if loaded, err := favorites.Load(); err == nil && loaded != nil {
			favoriteIDs = loaded
		}
	}
	return &PostsService{
		Fetcher:     fetcher,
		Favorites:   favorites,
		Feeds:       append([]string(nil), feeds...),
		Options:     opt,
		favoriteIDs: favoriteIDs,
		pending:     news.NewErrorQueue(nil),
	}
}

// Fetch performs the network fetch and returns the raw outcome without
// touching service state.
func (s *PostsService) Fetch() FetchOutcome {
	articles, report, err := s.Fetcher.FetchAll(s.Feeds, s.Options)
	return FetchOutcome{Articles: articles, Report: report, Err: err}
}

// BeginRefresh marks a refresh in flight and returns the snapshot that
// reflects it.
func (s *PostsService) BeginRefresh() news.Snapshot {
	s.refreshing = true
	return s.Snapshot()
}

// ApplyFetch folds a fetch outcome into service state and returns the
// resulting snapshot. On failure the previous articles are retained and
// a new pending error is queued; already-pending errors carry forward
// by id so an error being presented stays resolvable.
func (s *PostsService) ApplyFetch(outcome FetchOutcome) news.Snapshot {
	s.refreshing = false
	s.fetchedOnce = true

	if outcome.Err != nil {
		s.errSeq++
		s.pending.Push(news.FetchError{
			ID:      s.errSeq,
			Kind:    news.ErrorKindFetch,
			Message: fetchErrorMessage(outcome.Err),
		})
		return s.Snapshot()
	}

	s.articles = append([]news.Article(nil), outcome.Articles...)
	return s.Snapshot()
}

// ToggleFavorite flips favorite membership for an article id and
// persists the change. The updated snapshot is returned even when
// persistence fails; the error reports the failed write.
func (s *PostsService) ToggleFavorite(articleID string) (news.Snapshot, error) {
	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return s.Snapshot(), nil
	}

	now := !s.favoriteIDs[articleID]
	if now {
		s.favoriteIDs[articleID] = true
	} else {
		delete(s.favoriteIDs, articleID)
	}

	var err error
	if s.Favorites != nil {
		err = s.Favorites.Set(articleID, now)
	}
	return s.Snapshot(), err
}

// DismissError resolves a pending error by id. Unknown ids are a no-op.
func (s *PostsService) DismissError(id int64) news.Snapshot {
	s.pending.Resolve(id)
	return s.Snapshot()
}

// Snapshot returns the current state as an immutable snapshot.
func (s *PostsService) Snapshot() news.Snapshot {
	favoriteIDs := make(map[string]bool, len(s.favoriteIDs))
	for id := range s.favoriteIDs {
		favoriteIDs[id] = true
	}
	return news.Snapshot{
		Articles:      append([]news.Article(nil), s.articles...),
		FavoriteIDs:   favoriteIDs,
		PendingErrors: s.pending.Snapshot(),
		IsInitialLoad: !s.fetchedOnce,
		IsRefreshing:  s.refreshing,
	}
}

func fetchErrorMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "failed to load articles"
	}
	return "failed to load articles: " + msg
}
