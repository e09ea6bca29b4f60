package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shashmeister/sleeper-dashboard/metrics"
	"github.com/shashmeister/sleeper-dashboard/search"
)

func (c *controller) SearchPlayers(ctx context.Context, query string) []search.Entry {
	return c.searchIndex(ctx).Query(query)
}

// UpdatePlayers forces a fresh player-directory fetch, writes it to the
// cache, and rebuilds the search index. Unlike PlayerDirectory this
// returns the fetch error so the periodic update loop can log it.
func (c *controller) UpdatePlayers(ctx context.Context) error {
	start := time.Now()
	log.Printf("update players starting at %v", start.Format(time.DateTime))

	players, err := c.sleeper.LoadPlayers(ctx)
	if err != nil {
		c.errs.Report(ctx, "players", err)
		metrics.FetchTotal.WithLabelValues("players", metrics.OutcomeError).Inc()
		return fmt.Errorf("error updating players: %w", err)
	}
	metrics.FetchTotal.WithLabelValues("players", metrics.OutcomeOK).Inc()

	c.writeCached(ctx, "players", playersCacheKey, players)
	c.rebuildSearchIndex(ctx, players)

	log.Printf("update players finished, took %v, %d players", time.Since(start), len(players))
	return nil
}

func (c *controller) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

			// Refresh the league context alongside the directory so
			// ownership data in the search index stays current.
			c.Refresh(ctx)
			if err := c.UpdatePlayers(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}
