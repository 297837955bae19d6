// Package news defines core news-reading models.
package news

import "time"

// Article represents a single article in the stream.
// Articles are immutable once fetched; display order is snapshot order.
type Article struct {
	ID        string
	Title     string
	Subtitle  string
	Link      string
	Published string
	Date      time.Time
	Content   string
	Source    string
}

// Snapshot is one emission of the posts data source. It is replaced
// wholesale on every refresh; pending errors are carried forward by id.
type Snapshot struct {
	Articles      []Article
	FavoriteIDs   map[string]bool
	PendingErrors []FetchError
	IsInitialLoad bool
	IsRefreshing  bool
}

// Article returns the article with the given id, if present.
func (s Snapshot) Article(id string) (Article, bool) {
	if id == "" {
		return Article{}, false
	}
	for _, a := range s.Articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// IsFavorite reports favorite membership for an article id.
func (s Snapshot) IsFavorite(id string) bool {
	return s.FavoriteIDs[id]
}
