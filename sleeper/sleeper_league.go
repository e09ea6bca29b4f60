package sleeper

import (
	"strconv"
	"time"

	"github.com/shashmeister/sleeper-dashboard/model"
)

// Wire formats for the league-scoped Sleeper resources. Optional fields
// are validated and defaulted here, once, so the rest of the app works
// with fully-populated model types.

type sleeperLeague struct {
	ID              string                `json:"league_id"`
	Name            string                `json:"name"`
	Season          string                `json:"season"`
	Avatar          string                `json:"avatar"`
	Status          string                `json:"status"`
	DraftID         string                `json:"draft_id"`
	TotalRosters    int                   `json:"total_rosters"`
	RosterPositions []string              `json:"roster_positions"`
	Settings        sleeperLeagueSettings `json:"settings"`
}

type sleeperLeagueSettings struct {
	NumTeams         int `json:"num_teams"`
	PlayoffTeams     int `json:"playoff_teams"`
	PlayoffWeekStart int `json:"playoff_week_start"`
	DraftRounds      int `json:"draft_rounds"`
}

func (l *sleeperLeague) toLeague() *model.League {
	numTeams := l.Settings.NumTeams
	if numTeams == 0 {
		numTeams = l.TotalRosters
	}
	return &model.League{
		ID:      l.ID,
		Name:    l.Name,
		Season:  l.Season,
		Avatar:  l.Avatar,
		Status:  l.Status,
		DraftID: l.DraftID,
		Settings: model.LeagueSettings{
			NumTeams:         numTeams,
			PlayoffTeams:     l.Settings.PlayoffTeams,
			PlayoffWeekStart: l.Settings.PlayoffWeekStart,
			DraftRounds:      l.Settings.DraftRounds,
			RosterPositions:  l.RosterPositions,
		},
	}
}

type sleeperRoster struct {
	RosterID int                   `json:"roster_id"`
	OwnerID  string                `json:"owner_id"`
	Players  []string              `json:"players"`
	Starters []string              `json:"starters"`
	Settings sleeperRosterSettings `json:"settings"`
}

type sleeperRosterSettings struct {
	Wins             int `json:"wins"`
	Losses           int `json:"losses"`
	Ties             int `json:"ties"`
	FPTS             int `json:"fpts"`
	FPTSDecimal      int `json:"fpts_decimal"`
	FPTSAgainst      int `json:"fpts_against"`
	FPTSAgainstDec   int `json:"fpts_against_decimal"`
	TotalMovesWaiver int `json:"waiver_budget_used"`
}

func (r *sleeperRoster) toRoster() *model.Roster {
	players := r.Players
	if players == nil {
		players = []string{}
	}
	starters := r.Starters
	if starters == nil {
		starters = []string{}
	}
	return &model.Roster{
		ID:       r.RosterID,
		OwnerID:  r.OwnerID,
		Players:  players,
		Starters: starters,
		Settings: model.RosterSettings{
			Wins:           r.Settings.Wins,
			Losses:         r.Settings.Losses,
			Ties:           r.Settings.Ties,
			PointsFor:      r.Settings.FPTS,
			PointsForDec:   r.Settings.FPTSDecimal,
			PointsAgainst:  r.Settings.FPTSAgainst,
			PointsAgainDec: r.Settings.FPTSAgainstDec,
		},
	}
}

type sleeperUser struct {
	UserID      string           `json:"user_id"`
	DisplayName string           `json:"display_name"`
	Avatar      string           `json:"avatar"`
	Metadata    *sleeperUserMeta `json:"metadata"`
}

type sleeperUserMeta struct {
	TeamName string `json:"team_name"`
}

func (u *sleeperUser) toUser() *model.User {
	teamName := ""
	if u.Metadata != nil {
		teamName = u.Metadata.TeamName
	}
	return &model.User{
		ID:          u.UserID,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
		TeamName:    teamName,
	}
}

type sleeperDraft struct {
	DraftID        string               `json:"draft_id"`
	Status         string               `json:"status"`
	Type           string               `json:"type"`
	DraftOrder     map[string]int       `json:"draft_order"`
	SlotToRosterID map[string]int       `json:"slot_to_roster_id"`
	Settings       sleeperDraftSettings `json:"settings"`
}

type sleeperDraftSettings struct {
	Rounds int `json:"rounds"`
	Teams  int `json:"teams"`
}

func (d *sleeperDraft) toDraft() *model.Draft {
	// Sleeper keys slot_to_roster_id by the slot as a string.
	slots := make(map[int]int, len(d.SlotToRosterID))
	for k, v := range d.SlotToRosterID {
		if slot, err := strconv.Atoi(k); err == nil {
			slots[slot] = v
		}
	}
	return &model.Draft{
		ID:             d.DraftID,
		Status:         d.Status,
		Type:           d.Type,
		Rounds:         d.Settings.Rounds,
		DraftOrder:     d.DraftOrder,
		SlotToRosterID: slots,
	}
}

type sleeperDraftPick struct {
	PickNo   int                  `json:"pick_no"`
	RosterID int                  `json:"roster_id"`
	PlayerID string               `json:"player_id"`
	Metadata *sleeperPickMetadata `json:"metadata"`
}

type sleeperPickMetadata struct {
	// Owner overrides the drafting team's display name when present.
	Owner string `json:"owner"`
}

func (p *sleeperDraftPick) toDraftPick() *model.DraftPick {
	ownerName := ""
	if p.Metadata != nil {
		ownerName = p.Metadata.Owner
	}
	return &model.DraftPick{
		PickNo:    p.PickNo,
		RosterID:  p.RosterID,
		PlayerID:  p.PlayerID,
		OwnerName: ownerName,
	}
}

type sleeperMatchup struct {
	MatchupID       int     `json:"matchup_id"`
	RosterID        int     `json:"roster_id"`
	Points          float64 `json:"points"`
	ProjectedPoints float64 `json:"projected_points"`
}

func (m *sleeperMatchup) toMatchup(week int) *model.Matchup {
	return &model.Matchup{
		Week:            week,
		MatchupID:       m.MatchupID,
		RosterID:        m.RosterID,
		Points:          m.Points,
		ProjectedPoints: m.ProjectedPoints,
	}
}

type sleeperTransaction struct {
	TransactionID string               `json:"transaction_id"`
	Type          string               `json:"type"`
	Status        string               `json:"status"`
	Created       int64                `json:"created"` // ms since epoch
	RosterIDs     []int                `json:"roster_ids"`
	Adds          map[string]int       `json:"adds"`
	Drops         map[string]int       `json:"drops"`
	DraftPicks    []sleeperTradedPick  `json:"draft_picks"`
	Settings      *transactionSettings `json:"settings"`
}

type transactionSettings struct {
	WaiverBid int `json:"waiver_bid"`
}

type sleeperTradedPick struct {
	Season          string `json:"season"`
	Round           int    `json:"round"`
	OwnerID         int    `json:"owner_id"`
	PreviousOwnerID int    `json:"previous_owner_id"`
}

func (t *sleeperTransaction) toTransaction() *model.Transaction {
	picks := make([]model.TradedPick, 0, len(t.DraftPicks))
	for _, p := range t.DraftPicks {
		picks = append(picks, model.TradedPick{
			Season:          p.Season,
			Round:           p.Round,
			OwnerID:         p.OwnerID,
			PreviousOwnerID: p.PreviousOwnerID,
		})
	}

	settings := model.TransactionSettings{}
	if t.Settings != nil {
		settings.WaiverBid = t.Settings.WaiverBid
	}

	return &model.Transaction{
		ID:         t.TransactionID,
		Type:       t.Type,
		Status:     t.Status,
		Created:    time.UnixMilli(t.Created).UTC(),
		RosterIDs:  t.RosterIDs,
		Adds:       t.Adds,
		Drops:      t.Drops,
		DraftPicks: picks,
		Settings:   settings,
	}
}
