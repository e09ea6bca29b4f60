package sleeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashmeister/sleeper-dashboard/model"
	"github.com/shashmeister/sleeper-dashboard/testutils"
)

func TestGetLeague(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	l, err := c.GetLeague(context.Background(), testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if l.Name != "The Gridiron Gang" {
		t.Errorf("expected league name 'The Gridiron Gang', got %s", l.Name)
	}
	if l.Season != "2025" {
		t.Errorf("expected season 2025, got %s", l.Season)
	}
	if l.DraftID != testutils.TestDraftID {
		t.Errorf("expected draft id %s, got %s", testutils.TestDraftID, l.DraftID)
	}
	if l.Settings.NumTeams != 4 {
		t.Errorf("expected 4 teams, got %d", l.Settings.NumTeams)
	}
	if l.Settings.PlayoffTeams != 2 {
		t.Errorf("expected 2 playoff teams, got %d", l.Settings.PlayoffTeams)
	}
	if len(l.Settings.RosterPositions) != 7 {
		t.Errorf("expected 7 roster positions, got %d", len(l.Settings.RosterPositions))
	}
}

func TestGetLeague_missingID(t *testing.T) {
	c := NewForTest("http://localhost:1") // must never be contacted

	l, err := c.GetLeague(context.Background(), "")
	if err != nil {
		t.Fatalf("missing id should short-circuit, got error: %v", err)
	}
	if l != nil {
		t.Errorf("expected nil league, got %v", l)
	}
}

func TestGetRosters(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	rosters, err := c.GetRosters(context.Background(), testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(rosters) != 4 {
		t.Fatalf("expected 4 rosters, got %d", len(rosters))
	}

	r := rosters[0]
	if r.ID != 1 || r.OwnerID != "100001" {
		t.Errorf("unexpected first roster: id=%d owner=%s", r.ID, r.OwnerID)
	}
	if r.Settings.Wins != 10 || r.Settings.Losses != 4 {
		t.Errorf("unexpected record: %d-%d", r.Settings.Wins, r.Settings.Losses)
	}
	if len(r.Starters) != 5 {
		t.Errorf("expected 5 starters, got %d", len(r.Starters))
	}

	// every starter must be a held player
	for _, roster := range rosters {
		held := make(map[string]bool)
		for _, p := range roster.Players {
			held[p] = true
		}
		for _, s := range roster.Starters {
			if !held[s] {
				t.Errorf("roster %d starter %s is not a held player", roster.ID, s)
			}
		}
	}
}

func TestGetUsers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	users, err := c.GetUsers(context.Background(), testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("expected 4 users, got %d", len(users))
	}

	if users[0].TeamName != "The Juggernauts" {
		t.Errorf("expected custom team name, got %s", users[0].TeamName)
	}
	// metadata present but no team_name
	if users[1].TeamName != "" {
		t.Errorf("expected empty team name, got %s", users[1].TeamName)
	}
	// metadata absent entirely
	if users[3].TeamName != "" {
		t.Errorf("expected empty team name, got %s", users[3].TeamName)
	}
}

func TestGetDraftAndPicks(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	d, err := c.GetDraft(context.Background(), testutils.TestDraftID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if d.Status != model.DraftStatusComplete {
		t.Errorf("expected complete draft, got %s", d.Status)
	}
	if d.Rounds != 3 {
		t.Errorf("expected 3 rounds, got %d", d.Rounds)
	}
	if d.SlotToRosterID[2] != 2 {
		t.Errorf("slot 2 should map to roster 2, got %d", d.SlotToRosterID[2])
	}

	picks, err := c.GetDraftPicks(context.Background(), testutils.TestDraftID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(picks) != 12 {
		t.Fatalf("expected 12 picks, got %d", len(picks))
	}

	// pick numbers are strictly increasing and unique
	for i := 1; i < len(picks); i++ {
		if picks[i].PickNo <= picks[i-1].PickNo {
			t.Errorf("pick numbers not strictly increasing at index %d", i)
		}
	}

	if picks[3].OwnerName != "Keeper Slot" {
		t.Errorf("expected owner override on pick 4, got %q", picks[3].OwnerName)
	}
}

func TestGetDraftPicks_missingID(t *testing.T) {
	c := NewForTest("http://localhost:1")

	picks, err := c.GetDraftPicks(context.Background(), "")
	if err != nil {
		t.Fatalf("missing draft id should short-circuit, got error: %v", err)
	}
	if picks != nil {
		t.Errorf("expected nil picks, got %v", picks)
	}
}

func TestGetMatchups(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	matchups, err := c.GetMatchups(context.Background(), testutils.TestLeagueID, 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(matchups) != 5 {
		t.Fatalf("expected 5 matchup entries, got %d", len(matchups))
	}
	if matchups[0].Week != 1 {
		t.Errorf("expected week 1, got %d", matchups[0].Week)
	}
	if matchups[0].Points != 131.54 {
		t.Errorf("expected 131.54 points, got %f", matchups[0].Points)
	}

	// a week with no fixture data is an empty list, not an error
	empty, err := c.GetMatchups(context.Background(), testutils.TestLeagueID, 14)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no matchups for week 14, got %d", len(empty))
	}
}

func TestGetTransactions(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	txns, err := c.GetTransactions(context.Background(), testutils.TestLeagueID, 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(txns) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txns))
	}

	trade := txns[0]
	if trade.Type != model.TransactionTrade {
		t.Errorf("expected trade, got %s", trade.Type)
	}
	if trade.Adds["2374"] != 1 {
		t.Errorf("expected player 2374 added to roster 1, got %d", trade.Adds["2374"])
	}
	if len(trade.DraftPicks) != 1 || trade.DraftPicks[0].Round != 2 {
		t.Errorf("expected one round-2 pick in the trade, got %v", trade.DraftPicks)
	}
	if trade.Created.IsZero() {
		t.Errorf("created timestamp should be set")
	}

	waiver := txns[1]
	if waiver.Settings.WaiverBid != 17 {
		t.Errorf("expected waiver bid 17, got %d", waiver.Settings.WaiverBid)
	}
}

func TestLoadPlayers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	players, err := c.LoadPlayers(context.Background())
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	// the "Player Invalid" placeholder entry is filtered out
	if _, found := players["9999"]; found {
		t.Errorf("invalid placeholder player should have been filtered")
	}
	if len(players) != 15 {
		t.Fatalf("expected 15 players, got %d", len(players))
	}

	chase := players["4034"]
	if chase.FullName() != "Ja'Marr Chase" {
		t.Errorf("expected Ja'Marr Chase, got %s", chase.FullName())
	}
	if chase.Position != model.POS_WR {
		t.Errorf("expected WR, got %s", chase.Position)
	}
	if chase.Team != model.TEAM_CIN {
		t.Errorf("expected CIN, got %s", chase.Team)
	}
	if chase.Age != 25 {
		t.Errorf("expected age 25, got %d", chase.Age)
	}
	if chase.YahooID != "33399" {
		t.Errorf("expected yahoo id 33399, got %s", chase.YahooID)
	}

	// team defenses have no age and stay "unknown"
	def := players["SEA"]
	if def.HasKnownAge() {
		t.Errorf("team defense should not have a known age")
	}
	if def.Position != model.POS_DEF {
		t.Errorf("expected DEF, got %s", def.Position)
	}
}

func TestGetLeague_serverError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer s.Close()

	c := NewForTest(s.URL)

	if _, err := c.GetLeague(context.Background(), testutils.TestLeagueID); err == nil {
		t.Fatalf("expected an error for a 500 response")
	}
}

func TestGetRosters_parseError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{not json"))
	}))
	defer s.Close()

	c := NewForTest(s.URL)

	if _, err := c.GetRosters(context.Background(), testutils.TestLeagueID); err == nil {
		t.Fatalf("expected an error for an unparsable response")
	}
}
