package sleeper

import (
	"fmt"

	"github.com/shashmeister/sleeper-dashboard/model"
)

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	YahooID   int    `json:"yahoo_id"`
	ESPNID    int    `json:"espn_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	// Age is null for retired and practice-squad players; a missing age
	// decodes to 0 which the model treats as unknown.
	Age      int  `json:"age"`
	YearsExp int  `json:"years_exp"`
	ByeWeek  int  `json:"bye_week"`
	Active   bool `json:"active"`
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:        p.ID,
		YahooID:   formatAltID(p.YahooID),
		ESPNID:    formatAltID(p.ESPNID),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      model.ParseTeam(p.Team),
		Age:       p.Age,
		YearsExp:  p.YearsExp,
		ByeWeek:   p.ByeWeek,
		Active:    p.Active,
	}
}

func formatAltID(id int) string {
	if id == 0 {
		return ""
	}
	return fmt.Sprintf("%d", id)
}
