package model

const (
	DraftStatusNotStarted = "pre_draft"
	DraftStatusDrafting   = "drafting"
	DraftStatusComplete   = "complete"
)

type Draft struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Type   string `json:"type"` // snake or linear
	Rounds int    `json:"rounds"`
	// DraftOrder maps a user id to their draft slot (1-based).
	DraftOrder map[string]int `json:"draft_order,omitempty"`
	// SlotToRosterID maps a draft slot to the roster drafting from it.
	SlotToRosterID map[int]int `json:"slot_to_roster_id,omitempty"`
}

type DraftPick struct {
	// PickNo is the global 1-based pick number, strictly increasing and
	// unique within a draft.
	PickNo   int    `json:"pick_no"`
	RosterID int    `json:"roster_id"`
	PlayerID string `json:"player_id"`
	// OwnerName is an explicit team-name override carried in pick
	// metadata. Empty when the pick has none.
	OwnerName string `json:"owner_name,omitempty"`
}

// RoundForPick computes the 1-based round a pick belongs to. The round is
// always derived from the pick number and team count, never stored, so a
// changed team count can't leave stale round numbers behind.
func RoundForPick(pickNo, numTeams int) int {
	if numTeams <= 0 {
		return 0
	}
	return (pickNo + numTeams - 1) / numTeams
}
