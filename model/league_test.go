package model

import (
	"math"
	"testing"
)

func TestWinPct(t *testing.T) {
	tests := []struct {
		name     string
		settings RosterSettings
		expected float64
	}{
		{name: "no games played", settings: RosterSettings{}, expected: 0},
		{name: "all wins", settings: RosterSettings{Wins: 10}, expected: 1},
		{name: "all losses", settings: RosterSettings{Losses: 10}, expected: 0},
		{name: "even", settings: RosterSettings{Wins: 5, Losses: 5}, expected: 0.5},
		{name: "ties count half", settings: RosterSettings{Wins: 4, Losses: 4, Ties: 2}, expected: 0.5},
		{name: "one tie only", settings: RosterSettings{Ties: 1}, expected: 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.settings.WinPct()
			if math.IsNaN(got) {
				t.Fatalf("WinPct() returned NaN")
			}
			if got < 0 || got > 1 {
				t.Fatalf("WinPct() = %f, outside [0, 1]", got)
			}
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("WinPct() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestFPTS(t *testing.T) {
	s := RosterSettings{PointsFor: 1543, PointsForDec: 42}
	if got := s.FPTS(); math.Abs(got-1543.42) > 1e-9 {
		t.Errorf("FPTS() = %f, expected 1543.42", got)
	}
}

func TestBestName(t *testing.T) {
	u := User{DisplayName: "sleeperuser"}
	if got := u.BestName(); got != "sleeperuser" {
		t.Errorf("BestName() = %s, expected sleeperuser", got)
	}

	u.TeamName = "The Juggernauts"
	if got := u.BestName(); got != "The Juggernauts" {
		t.Errorf("BestName() = %s, expected The Juggernauts", got)
	}
}

func TestIsBench(t *testing.T) {
	r := Roster{
		Players:  []string{"1", "2", "3", "4"},
		Starters: []string{"1", "2"},
	}

	if r.IsBench("1") {
		t.Errorf("player 1 is a starter, not bench")
	}
	if !r.IsBench("3") {
		t.Errorf("player 3 should be on the bench")
	}
}
