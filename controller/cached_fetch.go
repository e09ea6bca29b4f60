package controller

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/shashmeister/sleeper-dashboard/metrics"
	"github.com/shashmeister/sleeper-dashboard/model"
	"github.com/shashmeister/sleeper-dashboard/search"
)

// The two highest-volume resources get a read-through cache. The player
// directory is thousands of records and changes rarely: player
// identities don't move when rosters do. News is small but
// time-sensitive.
const (
	playersCacheKey = "players:nfl"
	playersTTL      = 24 * time.Hour

	newsCacheKey = "news:league"
	newsTTL      = 15 * time.Minute

	newsLimit = 20
)

// PlayerDirectory returns the full player directory, served from the
// cache store when the entry is fresher than 24 hours. A fresh but
// empty payload is a leftover from an earlier failure and forces a
// refetch. On a fetch failure the result is an empty directory, never
// an error.
func (c *controller) PlayerDirectory(ctx context.Context) map[string]model.Player {
	players := readCached[map[string]model.Player](ctx, c, "players", playersCacheKey, playersTTL)
	if players != nil {
		c.ensureSearchIndex(ctx, players)
		return players
	}

	players, err := c.sleeper.LoadPlayers(ctx)
	if err != nil {
		c.errs.Report(ctx, "players", err)
		metrics.FetchTotal.WithLabelValues("players", metrics.OutcomeError).Inc()
		return map[string]model.Player{}
	}
	metrics.FetchTotal.WithLabelValues("players", metrics.OutcomeOK).Inc()

	c.writeCached(ctx, "players", playersCacheKey, players)
	c.rebuildSearchIndex(ctx, players)
	return players
}

// News returns the league news articles with a 15 minute cache.
func (c *controller) News(ctx context.Context) []model.NewsArticle {
	articles := readCached[[]model.NewsArticle](ctx, c, "news", newsCacheKey, newsTTL)
	if articles != nil {
		return articles
	}

	articles, err := c.news.FetchArticles(ctx, newsLimit)
	if err != nil {
		c.errs.Report(ctx, "news", err)
		metrics.FetchTotal.WithLabelValues("news", metrics.OutcomeError).Inc()
		return []model.NewsArticle{}
	}
	metrics.FetchTotal.WithLabelValues("news", metrics.OutcomeOK).Inc()

	c.writeCached(ctx, "news", newsCacheKey, articles)
	return articles
}

// readCached returns the cached value for key if it is fresh and
// non-empty, nil otherwise. Store failures are logged and treated as a
// miss; the caller proceeds to the network.
func readCached[T any](ctx context.Context, c *controller, resource, key string, ttl time.Duration) T {
	var zero T

	value, updated, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.errs.Report(ctx, resource+"-cache", err)
		metrics.CacheRequests.WithLabelValues(resource, metrics.OutcomeMiss).Inc()
		return zero
	}
	if !found || c.clock.Now().UTC().Sub(updated) >= ttl {
		// expired entries are absent, not merely stale
		metrics.CacheRequests.WithLabelValues(resource, metrics.OutcomeMiss).Inc()
		return zero
	}

	var decoded T
	if err := json.Unmarshal(value, &decoded); err != nil {
		c.errs.Report(ctx, resource+"-cache", err)
		metrics.CacheRequests.WithLabelValues(resource, metrics.OutcomeMiss).Inc()
		return zero
	}
	if isEmptyPayload(decoded) {
		// fresh but empty means a prior fetch failed; try again
		metrics.CacheRequests.WithLabelValues(resource, metrics.OutcomeBypass).Inc()
		return zero
	}

	metrics.CacheRequests.WithLabelValues(resource, metrics.OutcomeHit).Inc()
	return decoded
}

// writeCached stores the value best-effort: a failed write never undoes
// the fetch or blocks returning data to the caller.
func (c *controller) writeCached(ctx context.Context, resource, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		log.Printf("error encoding %s for cache: %v", resource, err)
		return
	}
	if err := c.store.Put(ctx, key, b); err != nil {
		c.errs.Report(ctx, resource+"-cache", err)
	}
}

func isEmptyPayload(v any) bool {
	switch t := v.(type) {
	case map[string]model.Player:
		return len(t) == 0
	case []model.NewsArticle:
		return len(t) == 0
	default:
		return v == nil
	}
}

// rebuildSearchIndex replaces the index wholesale; it is never patched
// incrementally.
func (c *controller) rebuildSearchIndex(ctx context.Context, players map[string]model.Player) {
	lc := c.leagueContext(ctx)
	c.setSearchIndex(search.Build(players, lc.Rosters, lc.Users))
}

// ensureSearchIndex builds the index if this session doesn't have one
// yet, e.g. when the directory was served from cache on first load.
func (c *controller) ensureSearchIndex(ctx context.Context, players map[string]model.Player) {
	c.mu.Lock()
	missing := c.idx == nil
	c.mu.Unlock()
	if missing {
		c.rebuildSearchIndex(ctx, players)
	}
}
