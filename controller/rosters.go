package controller

import (
	"context"
	"sort"

	"github.com/shashmeister/sleeper-dashboard/model"
)

type RosterPlayerView struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Position model.Position  `json:"position"`
	Team     *model.NFLTeam  `json:"team"`
	Age      int             `json:"age,omitempty"`
	Bucket   model.AgeBucket `json:"age_bucket"`
	ByeWeek  int             `json:"bye_week,omitempty"`
	Starter  bool            `json:"starter"`
}

type TeamRosterView struct {
	RosterID int                `json:"roster_id"`
	TeamName string             `json:"team_name"`
	Owner    string             `json:"owner"`
	Starters []RosterPlayerView `json:"starters"`
	Bench    []RosterPlayerView `json:"bench"`
	// AverageAge is the mean age of the held players with a known age.
	// It is 0 with an "unknown" bucket when no player's age is known.
	AverageAge float64         `json:"average_age"`
	AgeBucket  model.AgeBucket `json:"age_bucket"`
}

func (c *controller) Rosters(ctx context.Context) []TeamRosterView {
	lc := c.leagueContext(ctx)
	players := c.PlayerDirectory(ctx)
	return buildRosters(lc, players)
}

func buildRosters(lc *LeagueContext, players map[string]model.Player) []TeamRosterView {
	views := make([]TeamRosterView, 0, len(lc.Rosters))
	for _, r := range lc.Rosters {
		owner := UnknownTeam
		if u, found := lc.usersByID[r.OwnerID]; found {
			owner = u.DisplayName
		}

		view := TeamRosterView{
			RosterID: r.ID,
			TeamName: lc.TeamName(r.ID),
			Owner:    owner,
			Starters: []RosterPlayerView{},
			Bench:    []RosterPlayerView{},
		}

		// starters keep lineup-slot order; the bench sorts by position
		started := make(map[string]bool, len(r.Starters))
		for _, pid := range r.Starters {
			started[pid] = true
			view.Starters = append(view.Starters, rosterPlayer(pid, true, players))
		}
		for _, pid := range r.Players {
			if !started[pid] {
				view.Bench = append(view.Bench, rosterPlayer(pid, false, players))
			}
		}
		sort.SliceStable(view.Bench, func(i, j int) bool {
			a, b := view.Bench[i], view.Bench[j]
			if ap, bp := a.Position.SearchPriority(), b.Position.SearchPriority(); ap != bp {
				return ap < bp
			}
			return a.Name < b.Name
		})

		view.AverageAge = teamAverageAge(r, players)
		view.AgeBucket = model.BucketForAverageAge(view.AverageAge)

		views = append(views, view)
	}

	sort.Slice(views, func(i, j int) bool { return views[i].RosterID < views[j].RosterID })
	return views
}

func rosterPlayer(playerID string, starter bool, players map[string]model.Player) RosterPlayerView {
	p, found := players[playerID]
	if !found {
		return RosterPlayerView{
			ID:       playerID,
			Name:     unknownPlayer,
			Position: model.POS_UNKNOWN,
			Team:     model.TEAM_FA,
			Bucket:   model.AgeUnknown,
			Starter:  starter,
		}
	}
	return RosterPlayerView{
		ID:       playerID,
		Name:     p.FullName(),
		Position: p.Position,
		Team:     p.Team,
		Age:      p.Age,
		Bucket:   model.BucketForAge(p.Age),
		ByeWeek:  p.ByeWeek,
		Starter:  starter,
	}
}

// teamAverageAge is the mean age over held players with a known age.
// Players with an unknown age are excluded from both the numerator and
// the denominator; if nobody's age is known the result is 0, which
// downstream displays as "unknown", never as an age of zero.
func teamAverageAge(r model.Roster, players map[string]model.Player) float64 {
	sum, count := 0, 0
	for _, pid := range r.Players {
		if p, found := players[pid]; found && p.HasKnownAge() {
			sum += p.Age
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
