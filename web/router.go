package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/render"

	"github.com/shashmeister/sleeper-dashboard/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/league", leagueHandler(ctrl, render))
		r.Get("/standings", standingsHandler(ctrl, render))
		r.Get("/playoffs", playoffsHandler(ctrl, render))
		r.Get("/rosters", rostersHandler(ctrl, render))
		r.Get("/schedule/{week:\\d+}", scheduleHandler(ctrl, render))
		r.Get("/transactions/{week:\\d+}", transactionsHandler(ctrl, render))
		r.Get("/draft/rounds", draftRoundsHandler(ctrl, render))
		r.Get("/draft/teams", draftTeamsHandler(ctrl, render))
		r.Get("/players", playersProxyHandler(ctrl, render))
		r.Get("/players/search", playerSearchHandler(ctrl, render))
		r.Get("/news", newsHandler(ctrl, render))
		r.Get("/errors", errorsHandler(ctrl, render))
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/admin", func(r chi.Router) {
		// Set a longer timeout for /admin actions
		r.Use(middleware.Timeout(3 * time.Minute))

		r.Post("/players", forceUpdatePlayers(ctrl, render))
		r.Post("/refresh", refreshHandler(ctrl, render))
	})

	return r
}
