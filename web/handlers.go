package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/shashmeister/sleeper-dashboard/controller"
)

// playersCacheControl lets an edge cache serve the player directory for
// a day and keep serving it stale for two more while revalidating. The
// directory is large and changes rarely, so the dashboard should almost
// never pay for the full download.
const playersCacheControl = "public, max-age=86400, s-maxage=86400, stale-while-revalidate=172800"

type errorResponse struct {
	Error string `json:"error"`
}

// Aggregation handlers always answer 200: a degraded section carries
// its message field and empty collections instead of an error status.
// Only a malformed request is a 400.

func leagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := ctrl.League(r.Context())
		if l == nil {
			render.JSON(w, http.StatusOK, map[string]any{"message": "League unavailable"})
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.Standings(r.Context()))
	}
}

func playoffsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.Playoffs(r.Context()))
	}
}

func rostersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.Rosters(r.Context()))
	}
}

func scheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := parseWeek(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, ctrl.Schedule(r.Context(), week))
	}
}

func transactionsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := parseWeek(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, ctrl.Transactions(r.Context(), week))
	}
}

func draftRoundsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.DraftRounds(r.Context()))
	}
}

func draftTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.DraftTeams(r.Context()))
	}
}

// playersProxyHandler serves the full player directory for edge caches
// to hold. Unlike the section handlers this one reports failure
// honestly: an empty directory means the upstream fetch failed and
// there is nothing cached, and a 502 tells the edge not to cache it.
func playersProxyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players := ctrl.PlayerDirectory(r.Context())
		if len(players) == 0 {
			render.JSON(w, http.StatusBadGateway, errorResponse{Error: "player directory unavailable"})
			return
		}

		w.Header().Set("Cache-Control", playersCacheControl)
		render.JSON(w, http.StatusOK, players)
	}
}

func playerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		results := ctrl.SearchPlayers(r.Context(), query)

		render.JSON(w, http.StatusOK, map[string]any{
			"q":       query,
			"results": results,
		})
	}
}

func newsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.News(r.Context()))
	}
}

func errorsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.RecentErrors())
	}
}

func forceUpdatePlayers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error updating players: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "update players completed successfully")
	}
}

func refreshHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl.Refresh(r.Context())
		render.Text(w, http.StatusOK, "league context refreshed")
	}
}

func parseWeek(r *http.Request) (int, error) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		return 0, fmt.Errorf("error parsing week: %v", err)
	}
	if week < 1 || week > 18 {
		return 0, fmt.Errorf("week %d out of range", week)
	}
	return week, nil
}
