package controller

import (
	"context"

	"github.com/shashmeister/sleeper-dashboard/metrics"
	"github.com/shashmeister/sleeper-dashboard/model"
)

// Fail-open wrappers around the Sleeper client. HTTP failures, network
// failures, and parse failures are all treated the same way: report to
// the error log, count the outcome, and hand the caller a typed empty
// fallback. The cost of a failed fetch is a degraded dashboard
// section, never an error that propagates upward.

func (c *controller) fetchLeague(ctx context.Context) *model.League {
	l, err := c.sleeper.GetLeague(ctx, c.leagueID)
	if err != nil {
		c.errs.Report(ctx, "league", err)
		metrics.FetchTotal.WithLabelValues("league", metrics.OutcomeError).Inc()
		return nil
	}
	metrics.FetchTotal.WithLabelValues("league", metrics.OutcomeOK).Inc()
	return l
}

func (c *controller) fetchRosters(ctx context.Context) []model.Roster {
	rosters, err := c.sleeper.GetRosters(ctx, c.leagueID)
	if err != nil {
		c.errs.Report(ctx, "rosters", err)
		metrics.FetchTotal.WithLabelValues("rosters", metrics.OutcomeError).Inc()
		return []model.Roster{}
	}
	metrics.FetchTotal.WithLabelValues("rosters", metrics.OutcomeOK).Inc()
	return rosters
}

func (c *controller) fetchUsers(ctx context.Context) []model.User {
	users, err := c.sleeper.GetUsers(ctx, c.leagueID)
	if err != nil {
		c.errs.Report(ctx, "users", err)
		metrics.FetchTotal.WithLabelValues("users", metrics.OutcomeError).Inc()
		return []model.User{}
	}
	metrics.FetchTotal.WithLabelValues("users", metrics.OutcomeOK).Inc()
	return users
}

func (c *controller) fetchDraft(ctx context.Context, draftID string) *model.Draft {
	d, err := c.sleeper.GetDraft(ctx, draftID)
	if err != nil {
		c.errs.Report(ctx, "draft", err)
		metrics.FetchTotal.WithLabelValues("draft", metrics.OutcomeError).Inc()
		return nil
	}
	metrics.FetchTotal.WithLabelValues("draft", metrics.OutcomeOK).Inc()
	return d
}

func (c *controller) fetchDraftPicks(ctx context.Context, draftID string) []model.DraftPick {
	picks, err := c.sleeper.GetDraftPicks(ctx, draftID)
	if err != nil {
		c.errs.Report(ctx, "draft-picks", err)
		metrics.FetchTotal.WithLabelValues("draft_picks", metrics.OutcomeError).Inc()
		return []model.DraftPick{}
	}
	metrics.FetchTotal.WithLabelValues("draft_picks", metrics.OutcomeOK).Inc()
	return picks
}

func (c *controller) fetchMatchups(ctx context.Context, week int) []model.Matchup {
	matchups, err := c.sleeper.GetMatchups(ctx, c.leagueID, week)
	if err != nil {
		c.errs.Report(ctx, "matchups", err)
		metrics.FetchTotal.WithLabelValues("matchups", metrics.OutcomeError).Inc()
		return []model.Matchup{}
	}
	metrics.FetchTotal.WithLabelValues("matchups", metrics.OutcomeOK).Inc()
	return matchups
}

func (c *controller) fetchTransactions(ctx context.Context, week int) []model.Transaction {
	txns, err := c.sleeper.GetTransactions(ctx, c.leagueID, week)
	if err != nil {
		c.errs.Report(ctx, "transactions", err)
		metrics.FetchTotal.WithLabelValues("transactions", metrics.OutcomeError).Inc()
		return []model.Transaction{}
	}
	metrics.FetchTotal.WithLabelValues("transactions", metrics.OutcomeOK).Inc()
	return txns
}
