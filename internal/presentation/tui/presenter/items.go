// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/newsrack/internal/domain/news"
)

// Item is a view model for list rows: either a bucket section header or
// an article.
type Item struct {
	ID        string
	TitleText string
	Desc      string
	Link      string
	Published string
	Source    string
	Favorite  bool

	header bool
}

// FilterValue implements list.Item. Section headers are not filterable.
func (i *Item) FilterValue() string {
	if i.header {
		return ""
	}
	return i.TitleText
}

// Title returns the row title.
func (i *Item) Title() string {
	if i.Favorite {
		return "★ " + i.TitleText
	}
	return i.TitleText
}

// Description returns a formatted description for list display.
func (i *Item) Description() string {
	if i.header {
		return ""
	}
	if i.Published != "" {
		return fmt.Sprintf("%s - %s", i.Published, i.Desc)
	}
	return i.Desc
}

// IsSectionHeader reports whether the row is a bucket header.
func (i *Item) IsSectionHeader() bool { return i.header }

// BuildArticleListItems builds rows from a snapshot: each non-empty
// bucket contributes a header followed by its articles.
func BuildArticleListItems(snapshot news.Snapshot) []list.Item {
	buckets := news.AssignBuckets(snapshot.Articles)

	sections := []struct {
		bucket   news.Bucket
		articles []news.Article
	}{
		{news.BucketFeatured, buckets.Featured},
		{news.BucketBriefs, buckets.Briefs},
		{news.BucketPopular, buckets.Popular},
		{news.BucketRecent, buckets.Recent},
	}

	var items []list.Item
	for _, section := range sections {
		if len(section.articles) == 0 {
			continue
		}
		items = append(items, &Item{TitleText: section.bucket.String(), header: true})
		for _, a := range section.articles {
			items = append(items, &Item{
				ID:        a.ID,
				TitleText: a.Title,
				Desc:      a.Subtitle,
				Link:      a.Link,
				Published: a.Published,
				Source:    a.Source,
				Favorite:  snapshot.IsFavorite(a.ID),
			})
		}
	}
	return items
}

// ApplyArticleList replaces the list contents from a snapshot, keeping
// the selection on the same article where possible.
func ApplyArticleList(model *list.Model, snapshot news.Snapshot) {
	var selectedID string
	if item, ok := model.SelectedItem().(*Item); ok && item != nil && !item.IsSectionHeader() {
		selectedID = item.ID
	}

	model.SetItems(BuildArticleListItems(snapshot))

	if selectedID != "" {
		SelectByID(model, selectedID)
	}
}

// SelectByID moves the list selection to the article with the given id.
func SelectByID(model *list.Model, id string) bool {
	if id == "" {
		return false
	}
	for idx, listItem := range model.Items() {
		item, ok := listItem.(*Item)
		if !ok || item == nil || item.IsSectionHeader() {
			continue
		}
		if item.ID == id {
			model.Select(idx)
			return true
		}
	}
	return false
}
