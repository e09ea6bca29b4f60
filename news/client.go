package news

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/shashmeister/sleeper-dashboard/model"
)

// DefaultFeedURL is the league-news feed shown on the dashboard. Any
// RSS or Atom feed works; this one covers the whole NFL.
const DefaultFeedURL = "https://www.espn.com/espn/rss/nfl/news"

type Client interface {
	// FetchArticles returns up to limit articles, newest first.
	FetchArticles(ctx context.Context, limit int) ([]model.NewsArticle, error)
}

type client struct {
	feedURL string
	parser  *gofeed.Parser
}

func New(feedURL string) (Client, error) {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	p := gofeed.NewParser()
	p.UserAgent = "sleeper-dashboard/1.0"
	return &client{feedURL: feedURL, parser: p}, nil
}

func (c *client) FetchArticles(ctx context.Context, limit int) ([]model.NewsArticle, error) {
	feed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching news feed: %w", err)
	}

	articles := make([]model.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		published := time.Time{}
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.UTC()
		}
		articles = append(articles, model.NewsArticle{
			Title:     item.Title,
			Link:      item.Link,
			Source:    feed.Title,
			Published: published,
		})
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})

	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}
