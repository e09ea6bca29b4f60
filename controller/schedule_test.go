package controller

import (
	"testing"

	"github.com/shashmeister/sleeper-dashboard/model"
)

func TestBuildSchedule(t *testing.T) {
	lc := standingsFixture()
	matchups := []model.Matchup{
		{Week: 1, MatchupID: 1, RosterID: 1, Points: 131.54, ProjectedPoints: 120.0},
		{Week: 1, MatchupID: 1, RosterID: 2, Points: 101.22, ProjectedPoints: 115.5},
		{Week: 1, MatchupID: 2, RosterID: 3, ProjectedPoints: 97.25},
		{Week: 1, MatchupID: 2, RosterID: 4, ProjectedPoints: 109.5},
	}

	v := buildSchedule(lc, 1, matchups)
	if v.Message != "" {
		t.Errorf("expected no message, got %q", v.Message)
	}
	if len(v.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(v.Games))
	}

	scored := v.Games[0]
	if scored.Projected {
		t.Error("a game with recorded points is not projected")
	}
	if scored.Leading.RosterID != 1 || scored.Trailing.RosterID != 2 {
		t.Errorf("expected roster 1 leading roster 2, got %d over %d", scored.Leading.RosterID, scored.Trailing.RosterID)
	}
	if scored.Leading.TeamName != "The Juggernauts" {
		t.Errorf("unexpected team name %q", scored.Leading.TeamName)
	}

	// neither side has scored, so projections decide the ordering
	upcoming := v.Games[1]
	if !upcoming.Projected {
		t.Error("a game with no points yet is projected")
	}
	if upcoming.Leading.RosterID != 4 || upcoming.Trailing.RosterID != 3 {
		t.Errorf("expected roster 4 projected over roster 3, got %d over %d", upcoming.Leading.RosterID, upcoming.Trailing.RosterID)
	}
}

func TestBuildSchedule_dropsIncompletePairings(t *testing.T) {
	lc := standingsFixture()
	matchups := []model.Matchup{
		{Week: 2, MatchupID: 1, RosterID: 1, Points: 90},
		{Week: 2, MatchupID: 1, RosterID: 2, Points: 80},
		// a bye entry with no opponent
		{Week: 2, MatchupID: 3, RosterID: 9, Points: 70},
	}

	v := buildSchedule(lc, 2, matchups)
	if len(v.Games) != 1 {
		t.Fatalf("expected the orphaned matchup dropped, got %d games", len(v.Games))
	}
	if v.Games[0].MatchupID != 1 {
		t.Errorf("expected matchup 1, got %d", v.Games[0].MatchupID)
	}
}

func TestBuildSchedule_empty(t *testing.T) {
	v := buildSchedule(standingsFixture(), 5, nil)
	if v.Message != "No matchup data available" {
		t.Errorf("expected empty-state message, got %q", v.Message)
	}
	if v.Week != 5 {
		t.Errorf("expected week 5, got %d", v.Week)
	}
}

func TestBuildSchedule_onlyOrphans(t *testing.T) {
	matchups := []model.Matchup{
		{Week: 1, MatchupID: 1, RosterID: 1, Points: 50},
	}
	v := buildSchedule(standingsFixture(), 1, matchups)
	if len(v.Games) != 0 || v.Message == "" {
		t.Errorf("expected no games and an empty-state message, got %d games, message %q", len(v.Games), v.Message)
	}
}
