package model

type League struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Season   string         `json:"season"`
	Avatar   string         `json:"avatar,omitempty"`
	Status   string         `json:"status,omitempty"`
	DraftID  string         `json:"draft_id,omitempty"`
	Settings LeagueSettings `json:"settings"`
}

type LeagueSettings struct {
	NumTeams         int      `json:"num_teams"`
	PlayoffTeams     int      `json:"playoff_teams"`
	PlayoffWeekStart int      `json:"playoff_week_start"`
	DraftRounds      int      `json:"draft_rounds"`
	RosterPositions  []string `json:"roster_positions"`
}

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar,omitempty"`
	// TeamName is the custom team name from user metadata. Empty when the
	// user never set one; display falls back to DisplayName.
	TeamName string `json:"team_name,omitempty"`
}

// BestName returns the custom team name if set, otherwise the display name.
func (u *User) BestName() string {
	if u.TeamName != "" {
		return u.TeamName
	}
	return u.DisplayName
}

type Roster struct {
	ID       int            `json:"id"`
	OwnerID  string         `json:"owner_id"`
	Players  []string       `json:"players"`
	Starters []string       `json:"starters"`
	Settings RosterSettings `json:"settings"`
}

type RosterSettings struct {
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
	Ties           int `json:"ties"`
	PointsFor      int `json:"fpts"`
	PointsForDec   int `json:"fpts_decimal"`
	PointsAgainst  int `json:"fpts_against"`
	PointsAgainDec int `json:"fpts_against_decimal"`
}

// FPTS returns points-for with the decimal part folded in.
func (s *RosterSettings) FPTS() float64 {
	return float64(s.PointsFor) + float64(s.PointsForDec)/100.0
}

func (s *RosterSettings) FPTSAgainst() float64 {
	return float64(s.PointsAgainst) + float64(s.PointsAgainDec)/100.0
}

// WinPct is (wins + 0.5*ties) / games played, or 0 when no games have
// been played. It is always in [0, 1].
func (s *RosterSettings) WinPct() float64 {
	games := s.Wins + s.Losses + s.Ties
	if games == 0 {
		return 0
	}
	return (float64(s.Wins) + 0.5*float64(s.Ties)) / float64(games)
}

// IsBench reports whether the player is held but not in the starting lineup.
func (r *Roster) IsBench(playerID string) bool {
	for _, s := range r.Starters {
		if s == playerID {
			return false
		}
	}
	return true
}
