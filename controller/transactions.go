package controller

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shashmeister/sleeper-dashboard/model"
)

const (
	PickStatusAcquired = "Acquired"
	PickStatusOriginal = "Original"

	noTransactionsMessage = "No transactions this week"
)

type PlayerRef struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Position model.Position `json:"position"`
}

type PickTransferView struct {
	Season string `json:"season"`
	Round  int    `json:"round"`
	// Label reads like "2025 Round 2 Pick".
	Label string `json:"label"`
	// Status is "Acquired" when the pick came from another roster,
	// "Original" when the roster reacquired its own pick.
	Status   string `json:"status"`
	FromTeam string `json:"from_team,omitempty"`
}

type TransactionTeamView struct {
	RosterID  int                `json:"roster_id"`
	TeamName  string             `json:"team_name"`
	Added     []PlayerRef        `json:"added"`
	Dropped   []PlayerRef        `json:"dropped"`
	Picks     []PickTransferView `json:"picks,omitempty"`
	WaiverBid int                `json:"waiver_bid,omitempty"`
}

type TransactionView struct {
	ID      string                `json:"id"`
	Type    string                `json:"type"`
	Created time.Time             `json:"created"`
	Teams   []TransactionTeamView `json:"teams"`
}

type TransactionsView struct {
	Week         int               `json:"week"`
	Transactions []TransactionView `json:"transactions"`
	Message      string            `json:"message,omitempty"`
}

func (c *controller) Transactions(ctx context.Context, week int) *TransactionsView {
	lc := c.leagueContext(ctx)
	txns := c.fetchTransactions(ctx, week)
	players := c.PlayerDirectory(ctx)
	return buildTransactions(lc, week, txns, players)
}

func buildTransactions(lc *LeagueContext, week int, txns []model.Transaction, players map[string]model.Player) *TransactionsView {
	if len(txns) == 0 {
		return &TransactionsView{Week: week, Transactions: []TransactionView{}, Message: noTransactionsMessage}
	}

	views := make([]TransactionView, 0, len(txns))
	for _, t := range txns {
		views = append(views, TransactionView{
			ID:      t.ID,
			Type:    t.Type,
			Created: t.Created,
			Teams:   transactionTeams(lc, &t, players),
		})
	}

	// newest first
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Created.After(views[j].Created)
	})

	return &TransactionsView{Week: week, Transactions: views}
}

// transactionTeams renders one side per involved roster. Trades invert
// the adds map and attach traded picks to their new owner; waiver,
// free-agent, and drop moves read the adds/drops maps directly.
func transactionTeams(lc *LeagueContext, t *model.Transaction, players map[string]model.Player) []TransactionTeamView {
	teams := make([]TransactionTeamView, 0, len(t.RosterIDs))
	for _, rosterID := range t.RosterIDs {
		team := TransactionTeamView{
			RosterID: rosterID,
			TeamName: lc.TeamName(rosterID),
			Added:    []PlayerRef{},
			Dropped:  []PlayerRef{},
		}

		for playerID, toRoster := range t.Adds {
			if toRoster == rosterID {
				team.Added = append(team.Added, playerRef(playerID, players))
			}
		}
		for playerID, fromRoster := range t.Drops {
			if fromRoster == rosterID {
				team.Dropped = append(team.Dropped, playerRef(playerID, players))
			}
		}
		sortRefs(team.Added)
		sortRefs(team.Dropped)

		if t.Type == model.TransactionTrade {
			for _, p := range t.DraftPicks {
				if p.OwnerID != rosterID {
					continue
				}
				status := PickStatusAcquired
				fromTeam := ""
				if p.PreviousOwnerID == rosterID {
					status = PickStatusOriginal
				} else {
					fromTeam = lc.TeamName(p.PreviousOwnerID)
				}
				team.Picks = append(team.Picks, PickTransferView{
					Season:   p.Season,
					Round:    p.Round,
					Label:    fmt.Sprintf("%s Round %d Pick", p.Season, p.Round),
					Status:   status,
					FromTeam: fromTeam,
				})
			}
		}

		if t.Type == model.TransactionWaiver {
			team.WaiverBid = t.Settings.WaiverBid
		}

		teams = append(teams, team)
	}
	return teams
}

func playerRef(playerID string, players map[string]model.Player) PlayerRef {
	if p, found := players[playerID]; found {
		return PlayerRef{ID: playerID, Name: p.FullName(), Position: p.Position}
	}
	return PlayerRef{ID: playerID, Name: unknownPlayer, Position: model.POS_UNKNOWN}
}

func sortRefs(refs []PlayerRef) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
}
