package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/shashmeister/sleeper-dashboard/cache"
	"github.com/shashmeister/sleeper-dashboard/errlog"
	"github.com/shashmeister/sleeper-dashboard/model"
	"github.com/shashmeister/sleeper-dashboard/news"
	"github.com/shashmeister/sleeper-dashboard/search"
	"github.com/shashmeister/sleeper-dashboard/sleeper"
)

// C encapsulates the dashboard's business logic without worrying about
// any web layers. Aggregation methods never return errors: every
// upstream failure is reported to the error log and replaced with a
// well-typed empty result, so one broken section never takes down
// another.
type C interface {
	// League returns the current league header data, or nil if the
	// league could not be fetched.
	League(ctx context.Context) *model.League
	// Refresh rebuilds the session league context (league + rosters +
	// users) from the remote API.
	Refresh(ctx context.Context)

	Standings(ctx context.Context) *StandingsView
	Playoffs(ctx context.Context) *PlayoffView
	Rosters(ctx context.Context) []TeamRosterView
	Schedule(ctx context.Context, week int) *ScheduleView
	Transactions(ctx context.Context, week int) *TransactionsView
	DraftRounds(ctx context.Context) []RoundView
	DraftTeams(ctx context.Context) []TeamPicksView

	SearchPlayers(ctx context.Context, query string) []search.Entry
	// PlayerDirectory returns the full cached player directory.
	PlayerDirectory(ctx context.Context) map[string]model.Player
	News(ctx context.Context) []model.NewsArticle
	RecentErrors() []errlog.Record

	// UpdatePlayers forces a fresh player-directory fetch, bypassing
	// the cache, and rebuilds the search index.
	UpdatePlayers(ctx context.Context) error
	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock    clock.Clock
	sleeper  sleeper.Client
	news     news.Client
	store    cache.Store
	errs     *errlog.Log
	leagueID string

	mu  sync.Mutex
	lc  *LeagueContext
	idx *search.Index
}

func New(clock clock.Clock, sleeperClient sleeper.Client, newsClient news.Client, store cache.Store, errs *errlog.Log, leagueID string) (C, error) {
	c := &controller{
		clock:    clock,
		sleeper:  sleeperClient,
		news:     newsClient,
		store:    store,
		errs:     errs,
		leagueID: leagueID,
	}
	return c, nil
}

func (c *controller) League(ctx context.Context) *model.League {
	return c.leagueContext(ctx).League
}

func (c *controller) Refresh(ctx context.Context) {
	lc := c.buildLeagueContext(ctx)
	c.mu.Lock()
	c.lc = lc
	c.mu.Unlock()
}

func (c *controller) RecentErrors() []errlog.Record {
	return c.errs.Recent()
}

// leagueContext returns the session context, building it on first use.
func (c *controller) leagueContext(ctx context.Context) *LeagueContext {
	c.mu.Lock()
	lc := c.lc
	c.mu.Unlock()
	if lc != nil {
		return lc
	}

	lc = c.buildLeagueContext(ctx)
	c.mu.Lock()
	c.lc = lc
	c.mu.Unlock()
	return lc
}

func (c *controller) searchIndex(ctx context.Context) *search.Index {
	c.mu.Lock()
	idx := c.idx
	c.mu.Unlock()
	if idx != nil {
		return idx
	}

	// Loading the directory builds the index as a side effect.
	c.PlayerDirectory(ctx)

	c.mu.Lock()
	idx = c.idx
	c.mu.Unlock()
	if idx == nil {
		idx = search.Build(nil, nil, nil)
	}
	return idx
}

func (c *controller) setSearchIndex(idx *search.Index) {
	c.mu.Lock()
	c.idx = idx
	c.mu.Unlock()
}
