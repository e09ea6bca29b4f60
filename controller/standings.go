package controller

import (
	"context"
	"sort"
)

const (
	SeedStatusBye        = "bye"
	SeedStatusPlayoff    = "playoff"
	SeedStatusEliminated = "eliminated"

	noStandingsMessage = "No standings data available"
	noPlayoffsMessage  = "No playoff data available"
)

type StandingRow struct {
	Rank          int     `json:"rank"`
	RosterID      int     `json:"roster_id"`
	TeamName      string  `json:"team_name"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	WinPct        float64 `json:"win_pct"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	// Status is the playoff seeding band this rank falls in: bye,
	// playoff, or eliminated.
	Status string `json:"status"`
}

type StandingsView struct {
	Rows    []StandingRow `json:"rows"`
	Message string        `json:"message,omitempty"`
}

type PlayoffView struct {
	Bye        []StandingRow `json:"bye"`
	Playoff    []StandingRow `json:"playoff"`
	Eliminated []StandingRow `json:"eliminated"`
	Message    string        `json:"message,omitempty"`
}

func (c *controller) Standings(ctx context.Context) *StandingsView {
	return buildStandings(c.leagueContext(ctx))
}

func (c *controller) Playoffs(ctx context.Context) *PlayoffView {
	return buildPlayoffs(buildStandings(c.leagueContext(ctx)))
}

// buildStandings ranks rosters by win percentage, breaking ties on
// points-for. Order among exact (winPct, pointsFor) ties is
// implementation-defined.
func buildStandings(lc *LeagueContext) *StandingsView {
	if len(lc.Rosters) == 0 {
		return &StandingsView{Rows: []StandingRow{}, Message: noStandingsMessage}
	}

	rows := make([]StandingRow, 0, len(lc.Rosters))
	for _, r := range lc.Rosters {
		rows = append(rows, StandingRow{
			RosterID:      r.ID,
			TeamName:      lc.TeamName(r.ID),
			Wins:          r.Settings.Wins,
			Losses:        r.Settings.Losses,
			Ties:          r.Settings.Ties,
			WinPct:        r.Settings.WinPct(),
			PointsFor:     r.Settings.FPTS(),
			PointsAgainst: r.Settings.FPTSAgainst(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WinPct != rows[j].WinPct {
			return rows[i].WinPct > rows[j].WinPct
		}
		return rows[i].PointsFor > rows[j].PointsFor
	})

	byeSpots, playoffSpots := seedThresholds(lc)
	for i := range rows {
		rows[i].Rank = i + 1
		switch {
		case i < byeSpots:
			rows[i].Status = SeedStatusBye
		case i < playoffSpots:
			rows[i].Status = SeedStatusPlayoff
		default:
			rows[i].Status = SeedStatusEliminated
		}
	}

	return &StandingsView{Rows: rows}
}

func buildPlayoffs(standings *StandingsView) *PlayoffView {
	if len(standings.Rows) == 0 {
		return &PlayoffView{
			Bye:        []StandingRow{},
			Playoff:    []StandingRow{},
			Eliminated: []StandingRow{},
			Message:    noPlayoffsMessage,
		}
	}

	v := &PlayoffView{
		Bye:        []StandingRow{},
		Playoff:    []StandingRow{},
		Eliminated: []StandingRow{},
	}
	for _, row := range standings.Rows {
		switch row.Status {
		case SeedStatusBye:
			v.Bye = append(v.Bye, row)
		case SeedStatusPlayoff:
			v.Playoff = append(v.Playoff, row)
		default:
			v.Eliminated = append(v.Eliminated, row)
		}
	}
	return v
}

// seedThresholds returns the number of bye seeds and total playoff
// spots, both clamped to the team count. Byes are however many seeds it
// takes to round the bracket up to a power of two: 6 playoff teams
// means 2 byes, 4 or 8 mean none.
func seedThresholds(lc *LeagueContext) (int, int) {
	playoffSpots := 0
	if lc.League != nil {
		playoffSpots = lc.League.Settings.PlayoffTeams
	}
	if playoffSpots > lc.NumTeams {
		playoffSpots = lc.NumTeams
	}
	if playoffSpots < 0 {
		playoffSpots = 0
	}

	byeSpots := bracketSize(playoffSpots) - playoffSpots
	if byeSpots > playoffSpots {
		byeSpots = playoffSpots
	}
	return byeSpots, playoffSpots
}

func bracketSize(n int) int {
	if n <= 0 {
		return 0
	}
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
