package search

import (
	"sort"
	"strings"

	"github.com/shashmeister/sleeper-dashboard/model"
)

// MinQueryLen is the shortest query that produces suggestions. Shorter
// queries aren't an error, they just don't carry enough signal.
const MinQueryLen = 2

// MaxResults bounds a single query's result set.
const MaxResults = 10

// Entry is one searchable player plus the ownership resolved at
// index-build time so queries never scan rosters.
type Entry struct {
	Player model.Player `json:"player"`
	// OwnedBy is the display name of the team holding the player, or
	// empty for free agents.
	OwnedBy string `json:"owned_by,omitempty"`

	searchName string
	lastName   string
	firstName  string
}

// Index is a wholesale flattening of the player directory. It is
// rebuilt from scratch on every directory refresh and never patched
// incrementally, so it needs no locking of its own: swap the pointer.
type Index struct {
	entries []Entry
}

// Build flattens players into a searchable index, resolving each
// player's owning team through rosters and users.
func Build(players map[string]model.Player, rosters []model.Roster, users []model.User) *Index {
	owners := make(map[string]string, len(users))
	for _, u := range users {
		owners[u.ID] = u.BestName()
	}

	ownedBy := make(map[string]string)
	for _, r := range rosters {
		name := owners[r.OwnerID]
		for _, pid := range r.Players {
			ownedBy[pid] = name
		}
	}

	entries := make([]Entry, 0, len(players))
	for _, p := range players {
		entries = append(entries, Entry{
			Player:     p,
			OwnedBy:    ownedBy[p.ID],
			searchName: strings.ToLower(p.FullName()),
			lastName:   strings.ToLower(p.LastName),
			firstName:  strings.ToLower(p.FirstName),
		})
	}

	return &Index{entries: entries}
}

// Len reports how many players are indexed.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Query returns ranked substring matches for q. Ranking: last-name
// prefix, then full-name prefix, then first-name prefix, then position,
// then active players, then alphabetical.
func (idx *Index) Query(q string) []Entry {
	q = strings.ToLower(strings.TrimSpace(q))
	if len(q) < MinQueryLen {
		return nil
	}

	matches := make([]Entry, 0, MaxResults)
	for _, e := range idx.entries {
		if strings.Contains(e.searchName, q) {
			matches = append(matches, e)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]

		if ap, bp := strings.HasPrefix(a.lastName, q), strings.HasPrefix(b.lastName, q); ap != bp {
			return ap
		}
		if ap, bp := strings.HasPrefix(a.searchName, q), strings.HasPrefix(b.searchName, q); ap != bp {
			return ap
		}
		if ap, bp := strings.HasPrefix(a.firstName, q), strings.HasPrefix(b.firstName, q); ap != bp {
			return ap
		}
		if ap, bp := a.Player.Position.SearchPriority(), b.Player.Position.SearchPriority(); ap != bp {
			return ap < bp
		}
		if a.Player.Active != b.Player.Active {
			return a.Player.Active
		}
		return a.searchName < b.searchName
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}
