package controller

import (
	"context"
	"sort"

	"github.com/shashmeister/sleeper-dashboard/model"
)

const unknownPlayer = "Unknown Player"

type BoardPick struct {
	PickNo     int            `json:"pick_no"`
	Round      int            `json:"round"`
	RosterID   int            `json:"roster_id"`
	TeamName   string         `json:"team_name"`
	PlayerID   string         `json:"player_id"`
	PlayerName string         `json:"player_name"`
	Position   model.Position `json:"position"`
}

type RoundView struct {
	Round int         `json:"round"`
	Picks []BoardPick `json:"picks"`
}

type TeamPicksView struct {
	RosterID int         `json:"roster_id"`
	TeamName string      `json:"team_name"`
	Picks    []BoardPick `json:"picks"`
}

func (c *controller) DraftRounds(ctx context.Context) []RoundView {
	lc, picks, players := c.draftInputs(ctx)
	return picksByRound(lc, picks, players)
}

func (c *controller) DraftTeams(ctx context.Context) []TeamPicksView {
	lc, picks, players := c.draftInputs(ctx)
	return picksByTeam(lc, picks, players)
}

func (c *controller) draftInputs(ctx context.Context) (*LeagueContext, []model.DraftPick, map[string]model.Player) {
	lc := c.leagueContext(ctx)

	draftID := ""
	if lc.League != nil {
		draftID = lc.League.DraftID
	}

	// a league with no draft, or one that hasn't started, yields an
	// empty board without fetching picks
	draft := c.fetchDraft(ctx, draftID)
	if draft == nil || draft.Status == model.DraftStatusNotStarted {
		return lc, nil, map[string]model.Player{}
	}

	picks := c.fetchDraftPicks(ctx, draftID)
	players := c.PlayerDirectory(ctx)
	return lc, picks, players
}

// picksByRound groups picks into rounds using the canonical team count,
// rounds ascending and picks ascending within each round.
func picksByRound(lc *LeagueContext, picks []model.DraftPick, players map[string]model.Player) []RoundView {
	if len(picks) == 0 || lc.NumTeams <= 0 {
		return []RoundView{}
	}

	byRound := make(map[int][]BoardPick)
	for _, p := range picks {
		round := model.RoundForPick(p.PickNo, lc.NumTeams)
		byRound[round] = append(byRound[round], resolvePick(lc, p, round, players))
	}

	rounds := make([]int, 0, len(byRound))
	for r := range byRound {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)

	result := make([]RoundView, 0, len(rounds))
	for _, r := range rounds {
		rp := byRound[r]
		sort.Slice(rp, func(i, j int) bool { return rp[i].PickNo < rp[j].PickNo })
		result = append(result, RoundView{Round: r, Picks: rp})
	}
	return result
}

// picksByTeam groups picks by the drafting roster, picks ascending
// within each team. Teams are ordered by roster id.
func picksByTeam(lc *LeagueContext, picks []model.DraftPick, players map[string]model.Player) []TeamPicksView {
	if len(picks) == 0 {
		return []TeamPicksView{}
	}

	byTeam := make(map[int][]BoardPick)
	for _, p := range picks {
		round := model.RoundForPick(p.PickNo, lc.NumTeams)
		byTeam[p.RosterID] = append(byTeam[p.RosterID], resolvePick(lc, p, round, players))
	}

	ids := make([]int, 0, len(byTeam))
	for id := range byTeam {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]TeamPicksView, 0, len(ids))
	for _, id := range ids {
		tp := byTeam[id]
		sort.Slice(tp, func(i, j int) bool { return tp[i].PickNo < tp[j].PickNo })
		result = append(result, TeamPicksView{
			RosterID: id,
			TeamName: lc.TeamName(id),
			Picks:    tp,
		})
	}
	return result
}

// resolvePick fills in display names. The pick's own metadata override
// wins, then the roster's owner, then "Unknown Team".
func resolvePick(lc *LeagueContext, p model.DraftPick, round int, players map[string]model.Player) BoardPick {
	teamName := p.OwnerName
	if teamName == "" {
		teamName = lc.TeamName(p.RosterID)
	}

	playerName := unknownPlayer
	position := model.POS_UNKNOWN
	if player, found := players[p.PlayerID]; found {
		playerName = player.FullName()
		position = player.Position
	}

	return BoardPick{
		PickNo:     p.PickNo,
		Round:      round,
		RosterID:   p.RosterID,
		TeamName:   teamName,
		PlayerID:   p.PlayerID,
		PlayerName: playerName,
		Position:   position,
	}
}
