package controller

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/shashmeister/sleeper-dashboard/model"
)

// LeagueContext is one session's snapshot of the league, its rosters,
// and its users, fetched together and passed explicitly into every
// aggregation. It replaces any ambient "last fetched league" state:
// staleness is visible in BuiltAt and refresh points are explicit.
type LeagueContext struct {
	League  *model.League
	Rosters []model.Roster
	Users   []model.User
	BuiltAt time.Time

	// NumTeams is the single canonical team count used for all round
	// math and seeding, resolved once at build time.
	NumTeams int

	usersByID     map[string]model.User
	rostersByID   map[int]model.Roster
	teamNamesByID map[int]string
}

// UnknownTeam is the display fallback for any roster that can't be
// resolved to an owner.
const UnknownTeam = "Unknown Team"

// buildLeagueContext fans out the three independent fetches and joins
// the results. Each branch fails open to its empty fallback, so a
// partial outage yields a usable (if degraded) context.
func (c *controller) buildLeagueContext(ctx context.Context) *LeagueContext {
	var league *model.League
	var rosters []model.Roster
	var users []model.User

	var wg conc.WaitGroup
	wg.Go(func() { league = c.fetchLeague(ctx) })
	wg.Go(func() { rosters = c.fetchRosters(ctx) })
	wg.Go(func() { users = c.fetchUsers(ctx) })
	wg.Wait()

	return newLeagueContext(league, rosters, users, c.clock.Now().UTC())
}

func newLeagueContext(league *model.League, rosters []model.Roster, users []model.User, builtAt time.Time) *LeagueContext {
	lc := &LeagueContext{
		League:        league,
		Rosters:       rosters,
		Users:         users,
		BuiltAt:       builtAt,
		usersByID:     make(map[string]model.User, len(users)),
		rostersByID:   make(map[int]model.Roster, len(rosters)),
		teamNamesByID: make(map[int]string, len(rosters)),
	}

	// The league settings and the roster list can disagree on the team
	// count when a team was removed mid-season. The settings value wins
	// when present; the roster count is the fallback.
	if league != nil && league.Settings.NumTeams > 0 {
		lc.NumTeams = league.Settings.NumTeams
	} else {
		lc.NumTeams = len(rosters)
	}

	for _, u := range users {
		lc.usersByID[u.ID] = u
	}
	for _, r := range rosters {
		lc.rostersByID[r.ID] = r
		if u, found := lc.usersByID[r.OwnerID]; found {
			lc.teamNamesByID[r.ID] = u.BestName()
		}
	}

	return lc
}

// TeamName resolves a roster id to its display name, falling back to
// "Unknown Team" for any unmapped reference.
func (lc *LeagueContext) TeamName(rosterID int) string {
	if name, found := lc.teamNamesByID[rosterID]; found && name != "" {
		return name
	}
	return UnknownTeam
}

// Roster looks up a roster by id.
func (lc *LeagueContext) Roster(rosterID int) (model.Roster, bool) {
	r, found := lc.rostersByID[rosterID]
	return r, found
}
