package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// League and draft ids that the fixture data describes.
const (
	TestLeagueID = "992021"
	TestDraftID  = "992022"
)

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", nflPlayersHandler)

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/rosters", leagueFileHandler("rosters.json", "[]"))
			r.Get("/users", leagueFileHandler("users.json", "[]"))
			r.Get("/matchups/{week}", weekFileHandler("matchups_%s.json"))
			r.Get("/transactions/{week}", weekFileHandler("transactions_%s.json"))
		})

		r.Route("/draft/{draftID}", func(r chi.Router) {
			r.Get("/", draftHandler)
			r.Get("/picks", draftFileHandler("picks.json", "[]"))
		})
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == TestLeagueID {
		serveFile(w, "league.json")
	} else {
		// an unknown league returns a 200 with "null" as the body
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func draftHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "draftID") == TestDraftID {
		serveFile(w, "draft.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func leagueFileHandler(name, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "leagueID") == TestLeagueID {
			serveFile(w, name)
		} else {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(fallback))
		}
	}
}

func draftFileHandler(name, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "draftID") == TestDraftID {
			serveFile(w, name)
		} else {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(fallback))
		}
	}
}

// weekFileHandler serves per-week fixtures like matchups_1.json. Weeks
// without a fixture return an empty list, which matches how Sleeper
// responds for weeks that haven't happened.
func weekFileHandler(pattern string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "leagueID") != TestLeagueID {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("[]"))
			return
		}

		name := fmt.Sprintf(pattern, chi.URLParam(r, "week"))
		if _, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name)); err != nil {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("[]"))
			return
		}
		serveFile(w, name)
	}
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
