package testutils

import (
	"net/http"
	"net/http/httptest"
)

const newsFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>NFL Nation</title>
    <link>https://example.com/nfl</link>
    <description>League headlines</description>
    <item>
      <title>Star receiver questionable for Sunday</title>
      <link>https://example.com/nfl/articles/1</link>
      <pubDate>Mon, 08 Sep 2025 14:30:00 GMT</pubDate>
    </item>
    <item>
      <title>Week 1 waiver wire targets</title>
      <link>https://example.com/nfl/articles/2</link>
      <pubDate>Mon, 08 Sep 2025 11:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Injury report roundup</title>
      <link>https://example.com/nfl/articles/3</link>
      <pubDate>Sun, 07 Sep 2025 22:15:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

type FakeNewsServer struct {
	s *httptest.Server
}

func NewFakeNewsServer() *FakeNewsServer {
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(newsFeedXML))
	})

	return &FakeNewsServer{
		s: httptest.NewServer(mux),
	}
}

func (f *FakeNewsServer) Close() {
	f.s.Close()
}

// FeedURL is the address of the fake RSS feed.
func (f *FakeNewsServer) FeedURL() string {
	return f.s.URL + "/feed"
}
