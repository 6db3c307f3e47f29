package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/brndconsulting/nba-ui/controller"
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
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/", dashboardHandler(ctrl, render))

	r.Route("/select", func(r chi.Router) {
		// Show the league/team picker, optionally filtered by the q
		// parameter.
		r.Get("/", selectHandler(ctrl, render))
		r.Post("/", setActiveHandler(ctrl, render))
	})

	r.Get("/matchups", matchupsHandler(ctrl, render))
	r.Get("/standings", standingsHandler(ctrl, render))
	r.Get("/roster", rosterHandler(ctrl, render))
	r.Get("/settings", settingsHandler(ctrl, render))
	r.Get("/managers", managersHandler(ctrl, render))
	r.Get("/sync-status", syncStatusHandler(ctrl, render))
	r.Get("/reconnect", reconnectHandler(ctrl, render))

	return r
}
