package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/shashmeister/sleeper-dashboard/controller"
	"github.com/shashmeister/sleeper-dashboard/errlog"
	"github.com/shashmeister/sleeper-dashboard/model"
	"github.com/shashmeister/sleeper-dashboard/search"
)

type C struct {
	mock.Mock
}

func (c *C) League(ctx context.Context) *model.League {
	args := c.Called(ctx)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l
}

func (c *C) Refresh(ctx context.Context) {
	c.Called(ctx)
}

func (c *C) Standings(ctx context.Context) *controller.StandingsView {
	args := c.Called(ctx)

	var v *controller.StandingsView
	if args.Get(0) != nil {
		v = args.Get(0).(*controller.StandingsView)
	}
	return v
}

func (c *C) Playoffs(ctx context.Context) *controller.PlayoffView {
	args := c.Called(ctx)

	var v *controller.PlayoffView
	if args.Get(0) != nil {
		v = args.Get(0).(*controller.PlayoffView)
	}
	return v
}

func (c *C) Rosters(ctx context.Context) []controller.TeamRosterView {
	args := c.Called(ctx)

	var v []controller.TeamRosterView
	if args.Get(0) != nil {
		v = args.Get(0).([]controller.TeamRosterView)
	}
	return v
}

func (c *C) Schedule(ctx context.Context, week int) *controller.ScheduleView {
	args := c.Called(ctx, week)

	var v *controller.ScheduleView
	if args.Get(0) != nil {
		v = args.Get(0).(*controller.ScheduleView)
	}
	return v
}

func (c *C) Transactions(ctx context.Context, week int) *controller.TransactionsView {
	args := c.Called(ctx, week)

	var v *controller.TransactionsView
	if args.Get(0) != nil {
		v = args.Get(0).(*controller.TransactionsView)
	}
	return v
}

func (c *C) DraftRounds(ctx context.Context) []controller.RoundView {
	args := c.Called(ctx)

	var v []controller.RoundView
	if args.Get(0) != nil {
		v = args.Get(0).([]controller.RoundView)
	}
	return v
}

func (c *C) DraftTeams(ctx context.Context) []controller.TeamPicksView {
	args := c.Called(ctx)

	var v []controller.TeamPicksView
	if args.Get(0) != nil {
		v = args.Get(0).([]controller.TeamPicksView)
	}
	return v
}

func (c *C) SearchPlayers(ctx context.Context, query string) []search.Entry {
	args := c.Called(ctx, query)

	var v []search.Entry
	if args.Get(0) != nil {
		v = args.Get(0).([]search.Entry)
	}
	return v
}

func (c *C) PlayerDirectory(ctx context.Context) map[string]model.Player {
	args := c.Called(ctx)

	var v map[string]model.Player
	if args.Get(0) != nil {
		v = args.Get(0).(map[string]model.Player)
	}
	return v
}

func (c *C) News(ctx context.Context) []model.NewsArticle {
	args := c.Called(ctx)

	var v []model.NewsArticle
	if args.Get(0) != nil {
		v = args.Get(0).([]model.NewsArticle)
	}
	return v
}

func (c *C) RecentErrors() []errlog.Record {
	args := c.Called()

	var v []errlog.Record
	if args.Get(0) != nil {
		v = args.Get(0).([]errlog.Record)
	}
	return v
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
