package controller

import (
	"context"
	"sort"

	"github.com/shashmeister/sleeper-dashboard/model"
)

const noScheduleMessage = "No matchup data available"

type TeamScoreView struct {
	RosterID        int     `json:"roster_id"`
	TeamName        string  `json:"team_name"`
	Points          float64 `json:"points"`
	ProjectedPoints float64 `json:"projected_points"`
}

// GameView is one head-to-head pairing. Leading is listed first; when
// no score is recorded yet the ordering and display fall back to
// projections.
type GameView struct {
	MatchupID int           `json:"matchup_id"`
	Week      int           `json:"week"`
	Leading   TeamScoreView `json:"leading"`
	Trailing  TeamScoreView `json:"trailing"`
	// Projected is true before any points have been scored.
	Projected bool `json:"projected"`
}

type ScheduleView struct {
	Week    int        `json:"week"`
	Games   []GameView `json:"games"`
	Message string     `json:"message,omitempty"`
}

func (c *controller) Schedule(ctx context.Context, week int) *ScheduleView {
	lc := c.leagueContext(ctx)
	matchups := c.fetchMatchups(ctx, week)
	return buildSchedule(lc, week, matchups)
}

// buildSchedule pairs up matchup entries by their shared matchup id.
// Any group that isn't exactly two entries is incomplete or invalid and
// is dropped.
func buildSchedule(lc *LeagueContext, week int, matchups []model.Matchup) *ScheduleView {
	if len(matchups) == 0 {
		return &ScheduleView{Week: week, Games: []GameView{}, Message: noScheduleMessage}
	}

	groups := make(map[int][]model.Matchup)
	for _, m := range matchups {
		groups[m.MatchupID] = append(groups[m.MatchupID], m)
	}

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	games := make([]GameView, 0, len(ids))
	for _, id := range ids {
		group := groups[id]
		if len(group) != 2 {
			continue
		}

		a, b := group[0], group[1]
		projected := !a.HasScore() && !b.HasScore()

		leading, trailing := a, b
		if projected {
			if b.ProjectedPoints > a.ProjectedPoints {
				leading, trailing = b, a
			}
		} else if b.Points > a.Points {
			leading, trailing = b, a
		}

		games = append(games, GameView{
			MatchupID: id,
			Week:      week,
			Leading:   teamScore(lc, leading),
			Trailing:  teamScore(lc, trailing),
			Projected: projected,
		})
	}

	view := &ScheduleView{Week: week, Games: games}
	if len(games) == 0 {
		view.Message = noScheduleMessage
	}
	return view
}

func teamScore(lc *LeagueContext, m model.Matchup) TeamScoreView {
	return TeamScoreView{
		RosterID:        m.RosterID,
		TeamName:        lc.TeamName(m.RosterID),
		Points:          m.Points,
		ProjectedPoints: m.ProjectedPoints,
	}
}
