package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/shashmeister/sleeper-dashboard/controller"
	"github.com/shashmeister/sleeper-dashboard/controller/mockcontroller"
	"github.com/shashmeister/sleeper-dashboard/model"
	"github.com/shashmeister/sleeper-dashboard/search"
)

func newTestServer(t *testing.T) (*httptest.Server, *mockcontroller.C) {
	t.Helper()

	ctrl := &mockcontroller.C{}
	server := httptest.NewServer(getRouter(ctrl, newRender()))
	t.Cleanup(server.Close)
	return server, ctrl
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
	}
	return resp
}

func TestStandingsHandler(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("Standings", mock.Anything).Return(&controller.StandingsView{
		Rows: []controller.StandingRow{
			{Rank: 1, RosterID: 1, TeamName: "The Juggernauts", Wins: 10, Losses: 4, WinPct: 0.714, PointsFor: 1543.42, Status: controller.SeedStatusPlayoff},
		},
	})

	var got controller.StandingsView
	resp := getJSON(t, server.URL+"/api/standings", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(got.Rows) != 1 || got.Rows[0].TeamName != "The Juggernauts" {
		t.Errorf("unexpected body: %+v", got)
	}
	ctrl.AssertExpectations(t)
}

// A degraded section is still a 200 with its message field; the error
// status codes are reserved for malformed requests and the proxy.
func TestStandingsHandler_degraded(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("Standings", mock.Anything).Return(&controller.StandingsView{
		Rows:    []controller.StandingRow{},
		Message: "No standings data available",
	})

	var got controller.StandingsView
	resp := getJSON(t, server.URL+"/api/standings", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for a degraded section, got %d", resp.StatusCode)
	}
	if got.Message != "No standings data available" {
		t.Errorf("expected the empty-state message, got %q", got.Message)
	}
}

func TestScheduleHandler(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("Schedule", mock.Anything, 3).Return(&controller.ScheduleView{Week: 3, Games: []controller.GameView{}})

	var got controller.ScheduleView
	resp := getJSON(t, server.URL+"/api/schedule/3", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got.Week != 3 {
		t.Errorf("expected week 3, got %d", got.Week)
	}
	ctrl.AssertExpectations(t)
}

func TestScheduleHandler_badWeek(t *testing.T) {
	server, ctrl := newTestServer(t)

	// week 0 matches the route pattern but fails range validation
	resp := getJSON(t, server.URL+"/api/schedule/0", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for week 0, got %d", resp.StatusCode)
	}

	// a non-numeric week never matches the route
	resp = getJSON(t, server.URL+"/api/schedule/abc", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for a non-numeric week, got %d", resp.StatusCode)
	}

	ctrl.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func TestTransactionsHandler(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("Transactions", mock.Anything, 2).Return(&controller.TransactionsView{
		Week:         2,
		Transactions: []controller.TransactionView{},
		Message:      "No transactions this week",
	})

	var got controller.TransactionsView
	resp := getJSON(t, server.URL+"/api/transactions/2", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got.Message != "No transactions this week" {
		t.Errorf("unexpected message %q", got.Message)
	}
}

func TestPlayersProxyHandler(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("PlayerDirectory", mock.Anything).Return(map[string]model.Player{
		"4034": {ID: "4034", FirstName: "Ja'Marr", LastName: "Chase", Position: model.POS_WR, Team: model.TEAM_CIN},
	})

	var got map[string]model.Player
	resp := getJSON(t, server.URL+"/api/players", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	cc := resp.Header.Get("Cache-Control")
	if cc != playersCacheControl {
		t.Errorf("unexpected Cache-Control %q", cc)
	}
	if !strings.Contains(cc, "stale-while-revalidate") {
		t.Errorf("expected stale-while-revalidate in %q", cc)
	}
	if _, found := got["4034"]; !found {
		t.Errorf("directory missing expected player: %v", got)
	}
}

// With no cached directory and a failed fetch the proxy must answer
// 502 so the edge cache doesn't hold onto an empty body.
func TestPlayersProxyHandler_upstreamFailure(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("PlayerDirectory", mock.Anything).Return(map[string]model.Player{})

	var got map[string]string
	resp := getJSON(t, server.URL+"/api/players", &got)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
	if got["error"] == "" {
		t.Errorf("expected a JSON error body, got %v", got)
	}
	if cc := resp.Header.Get("Cache-Control"); strings.Contains(cc, "max-age=86400") {
		t.Errorf("a failure response must not carry the long cache header, got %q", cc)
	}
}

func TestPlayerSearchHandler(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("SearchPlayers", mock.Anything, "chase").Return([]search.Entry{
		{Player: model.Player{ID: "4034", FirstName: "Ja'Marr", LastName: "Chase", Position: model.POS_WR}, OwnedBy: "The Juggernauts"},
	})

	var got struct {
		Q       string         `json:"q"`
		Results []search.Entry `json:"results"`
	}
	resp := getJSON(t, server.URL+"/api/players/search?q=chase", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got.Q != "chase" || len(got.Results) != 1 {
		t.Errorf("unexpected body: %+v", got)
	}
	if got.Results[0].OwnedBy != "The Juggernauts" {
		t.Errorf("expected ownership in results, got %+v", got.Results[0])
	}
}

func TestLeagueHandler_unavailable(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("League", mock.Anything).Return(nil)

	var got map[string]string
	resp := getJSON(t, server.URL+"/api/league", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got["message"] == "" {
		t.Errorf("expected an unavailable message, got %v", got)
	}
}

func TestErrorsHandler(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("RecentErrors").Return(nil)

	resp := getJSON(t, server.URL+"/api/errors", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestForceUpdatePlayers(t *testing.T) {
	server, ctrl := newTestServer(t)
	ctrl.On("UpdatePlayers", mock.Anything).Return(nil)

	resp, err := http.Post(server.URL+"/admin/players", "", nil)
	if err != nil {
		t.Fatalf("error making request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	ctrl.AssertExpectations(t)
}
