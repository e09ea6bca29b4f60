package model

import (
	"fmt"
	"strings"
)

type Player struct {
	ID        string   `json:"id"`
	YahooID   string   `json:"yahoo_id,omitempty"`
	ESPNID    string   `json:"espn_id,omitempty"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Position  Position `json:"position"`
	Team      *NFLTeam `json:"team"`
	// Age is 0 when Sleeper doesn't know the player's age. A zero age
	// means "unknown" everywhere, never "zero years old".
	Age      int  `json:"age,omitempty"`
	YearsExp int  `json:"years_exp"`
	ByeWeek  int  `json:"bye_week,omitempty"`
	Active   bool `json:"active"`
}

func (p *Player) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
}

func (p *Player) HasKnownAge() bool {
	return p.Age > 0
}

func (p *Player) FormattedAge() string {
	if !p.HasKnownAge() {
		return "unknown"
	}
	return fmt.Sprintf("%d", p.Age)
}
