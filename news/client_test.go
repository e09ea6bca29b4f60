package news

import (
	"context"
	"testing"

	"github.com/shashmeister/sleeper-dashboard/testutils"
)

func TestFetchArticles(t *testing.T) {
	fakeNews := testutils.NewFakeNewsServer()
	defer fakeNews.Close()

	c, err := New(fakeNews.FeedURL())
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	articles, err := c.FetchArticles(context.Background(), 0)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}

	// newest first
	for i := 1; i < len(articles); i++ {
		if articles[i].Published.After(articles[i-1].Published) {
			t.Errorf("articles not sorted newest first at index %d", i)
		}
	}

	if articles[0].Title != "Star receiver questionable for Sunday" {
		t.Errorf("unexpected first article: %s", articles[0].Title)
	}
	if articles[0].Source != "NFL Nation" {
		t.Errorf("expected source NFL Nation, got %s", articles[0].Source)
	}
}

func TestFetchArticles_limit(t *testing.T) {
	fakeNews := testutils.NewFakeNewsServer()
	defer fakeNews.Close()

	c, err := New(fakeNews.FeedURL())
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	articles, err := c.FetchArticles(context.Background(), 2)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(articles) != 2 {
		t.Errorf("expected 2 articles, got %d", len(articles))
	}
}

func TestFetchArticles_badURL(t *testing.T) {
	c, err := New("http://localhost:1/feed")
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	if _, err := c.FetchArticles(context.Background(), 0); err == nil {
		t.Fatalf("expected an error for an unreachable feed")
	}
}
