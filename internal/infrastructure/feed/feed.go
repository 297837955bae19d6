// Package feed fetches and parses RSS/Atom feeds into articles.
package feed

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/newsrack/internal/application/usecase"
	"github.com/tesso57/newsrack/internal/domain/news"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "Newsrack/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// FetchWithContext parses one feed into articles.
func FetchWithContext(ctx context.Context, url string) ([]news.Article, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("feed url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, err
	}

	articles := make([]news.Article, len(parsed.Items))
	for i, item := range parsed.Items {
		pub := item.Published
		if pub == "" {
			pub = item.Updated
		}
		var date time.Time
		if item.PublishedParsed != nil {
			date = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			date = *item.UpdatedParsed
		}

		articles[i] = news.Article{
			ID:        articleID(item),
			Title:     item.Title,
			Subtitle:  item.Description,
			Link:      item.Link,
			Published: pub,
			Date:      date,
			Content:   item.Content,
			Source:    parsed.Title,
		}
	}

	return articles, nil
}

func articleID(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}
	return item.Title
}

// FetchAll parses all configured feeds concurrently and merges the
// results by publication date, newest first.
func FetchAll(urls []string, opt usecase.FetchOptions) ([]news.Article, usecase.FetchReport, error) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var all []news.Article
	report := usecase.FetchReport{Requested: len(urls)}

	batchCtx := context.Background()
	var batchCancel context.CancelFunc
	if opt.BatchTimeout > 0 {
		batchCtx, batchCancel = context.WithTimeout(batchCtx, opt.BatchTimeout)
		defer batchCancel()
	}

	for _, url := range urls {
		url := strings.TrimSpace(url)
		if url == "" {
			continue
		}
		wg.Go(func() {
			feedCtx := batchCtx
			var cancel context.CancelFunc
			if opt.PerFeedTimeout > 0 {
				feedCtx, cancel = context.WithTimeout(batchCtx, opt.PerFeedTimeout)
			}
			if cancel != nil {
				defer cancel()
			}

			articles, err := FetchWithContext(feedCtx, url)
			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				report.Succeeded++
				all = append(all, articles...)
				return
			}
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				report.TimedOut++
				return
			}
			report.Failed++
		})
	}
	wg.Wait()

	if report.Requested > 0 && report.Succeeded == 0 {
		return nil, report, errors.New("no feed could be loaded")
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})

	return all, report, nil
}

// Fetcher implements the usecase.ArticleFetcher interface.
type Fetcher struct{}

// FetchAll fetches and merges all configured feeds.
func (Fetcher) FetchAll(urls []string, opt usecase.FetchOptions) ([]news.Article, usecase.FetchReport, error) {
	return FetchAll(urls, opt)
}
