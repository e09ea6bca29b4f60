package mocksleeper

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shashmeister/sleeper-dashboard/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	args := c.Called(leagueID)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}
	return res, args.Error(1)
}

func (c *Client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	args := c.Called(leagueID)

	var res []model.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Roster)
	}
	return res, args.Error(1)
}

func (c *Client) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	args := c.Called(leagueID)

	var res []model.User
	if args.Get(0) != nil {
		res = args.Get(0).([]model.User)
	}
	return res, args.Error(1)
}

func (c *Client) GetDraft(ctx context.Context, draftID string) (*model.Draft, error) {
	args := c.Called(draftID)

	var res *model.Draft
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Draft)
	}
	return res, args.Error(1)
}

func (c *Client) GetDraftPicks(ctx context.Context, draftID string) ([]model.DraftPick, error) {
	args := c.Called(draftID)

	var res []model.DraftPick
	if args.Get(0) != nil {
		res = args.Get(0).([]model.DraftPick)
	}
	return res, args.Error(1)
}

func (c *Client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	args := c.Called(leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}
	return res, args.Error(1)
}

func (c *Client) GetTransactions(ctx context.Context, leagueID string, week int) ([]model.Transaction, error) {
	args := c.Called(leagueID, week)

	var res []model.Transaction
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Transaction)
	}
	return res, args.Error(1)
}

func (c *Client) LoadPlayers(ctx context.Context) (map[string]model.Player, error) {
	args := c.Called()

	var res map[string]model.Player
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]model.Player)
	}
	return res, args.Error(1)
}
