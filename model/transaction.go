package model

import "time"

const (
	TransactionTrade     = "trade"
	TransactionWaiver    = "waiver"
	TransactionFreeAgent = "free_agent"
	TransactionDrop      = "drop"
)

type Transaction struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Status  string    `json:"status,omitempty"`
	Created time.Time `json:"created"`
	// RosterIDs lists every roster involved in the transaction.
	RosterIDs []int `json:"roster_ids"`
	// Adds maps an added player id to the roster receiving them.
	Adds map[string]int `json:"adds,omitempty"`
	// Drops maps a dropped player id to the roster that held them.
	Drops      map[string]int      `json:"drops,omitempty"`
	DraftPicks []TradedPick        `json:"draft_picks,omitempty"`
	Settings   TransactionSettings `json:"settings,omitempty"`
}

type TransactionSettings struct {
	WaiverBid int `json:"waiver_bid,omitempty"`
}

// TradedPick is a future draft pick moved by a trade.
type TradedPick struct {
	Season string `json:"season"`
	Round  int    `json:"round"`
	// OwnerID is the roster receiving the pick, PreviousOwnerID the
	// roster that held it before the trade.
	OwnerID         int `json:"owner_id"`
	PreviousOwnerID int `json:"previous_owner_id"`
}
