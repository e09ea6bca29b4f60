package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/shashmeister/sleeper-dashboard/model"
)

const SleeperURL = "https://api.sleeper.app"

// Client is a read-only view of the Sleeper API. Every method is a
// single best-effort request: no retries, no backoff. Callers that want
// fail-open behavior wrap these and substitute empty fallbacks.
type Client interface {
	GetLeague(ctx context.Context, leagueID string) (*model.League, error)
	GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetUsers(ctx context.Context, leagueID string) ([]model.User, error)
	GetDraft(ctx context.Context, draftID string) (*model.Draft, error)
	GetDraftPicks(ctx context.Context, draftID string) ([]model.DraftPick, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error)
	GetTransactions(ctx context.Context, leagueID string, week int) ([]model.Transaction, error)
	LoadPlayers(ctx context.Context) (map[string]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New() (Client, error) {
	return newClient(SleeperURL), nil
}

// NewForTest returns a client pointed at a fake server.
func NewForTest(url string) Client {
	return newClient(url)
}

func newClient(url string) *client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		// Sleeper asks clients to stay under 1000 calls/min. The
		// dashboard makes nowhere near that, but be polite anyway.
		limiter: rate.NewLimiter(rate.Limit(10), 10),
	}
}

func (c *client) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	if leagueID == "" {
		return nil, nil
	}

	var parsed sleeperLeague
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s", leagueID), &parsed); err != nil {
		return nil, err
	}
	return parsed.toLeague(), nil
}

func (c *client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	if leagueID == "" {
		return nil, nil
	}

	var parsed []sleeperRoster
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/rosters", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		result = append(result, *r.toRoster())
	}
	return result, nil
}

func (c *client) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	if leagueID == "" {
		return nil, nil
	}

	var parsed []sleeperUser
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		result = append(result, *u.toUser())
	}
	return result, nil
}

func (c *client) GetDraft(ctx context.Context, draftID string) (*model.Draft, error) {
	if draftID == "" {
		return nil, nil
	}

	var parsed sleeperDraft
	if err := c.get(ctx, fmt.Sprintf("/v1/draft/%s", draftID), &parsed); err != nil {
		return nil, err
	}
	return parsed.toDraft(), nil
}

func (c *client) GetDraftPicks(ctx context.Context, draftID string) ([]model.DraftPick, error) {
	if draftID == "" {
		return nil, nil
	}

	var parsed []sleeperDraftPick
	if err := c.get(ctx, fmt.Sprintf("/v1/draft/%s/picks", draftID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.DraftPick, 0, len(parsed))
	for _, p := range parsed {
		result = append(result, *p.toDraftPick())
	}
	return result, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	if leagueID == "" || week < 1 {
		return nil, nil
	}

	var parsed []sleeperMatchup
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		result = append(result, *m.toMatchup(week))
	}
	return result, nil
}

func (c *client) GetTransactions(ctx context.Context, leagueID string, week int) ([]model.Transaction, error) {
	if leagueID == "" || week < 1 {
		return nil, nil
	}

	var parsed []sleeperTransaction
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/transactions/%d", leagueID, week), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Transaction, 0, len(parsed))
	for _, t := range parsed {
		result = append(result, *t.toTransaction())
	}
	return result, nil
}

// LoadPlayers fetches the full NFL player directory, keyed by Sleeper
// player id. This is by far the largest response the API serves, which
// is why callers cache it.
func (c *client) LoadPlayers(ctx context.Context) (map[string]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.get(ctx, "/v1/players/nfl", &parsed); err != nil {
		return nil, err
	}

	result := make(map[string]model.Player, len(parsed))
	for id, p := range parsed {
		if p.FirstName == "Player" && p.LastName == "Invalid" {
			continue
		}
		result[id] = *p.toPlayer()
	}
	return result, nil
}

func (c *client) get(ctx context.Context, path string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("error waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
