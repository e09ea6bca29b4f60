package model

// Matchup is one roster's entry in a weekly head-to-head pairing. Two
// entries sharing a MatchupID in the same week form one game.
type Matchup struct {
	Week            int     `json:"week"`
	MatchupID       int     `json:"matchup_id"`
	RosterID        int     `json:"roster_id"`
	Points          float64 `json:"points"`
	ProjectedPoints float64 `json:"projected_points"`
}

// HasScore reports whether any points have been recorded yet. Before
// kickoff Sleeper reports 0 for every roster, so the projected score is
// shown instead.
func (m *Matchup) HasScore() bool {
	return m.Points > 0
}
