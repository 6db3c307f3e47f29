package web

import (
	"net/http"

	"github.com/unrolled/render"

	"github.com/brndconsulting/nba-ui/controller"
	"github.com/brndconsulting/nba-ui/model"
)

func dashboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contextState := ctrl.LoadContext(r.Context())
		if contextState.Unauthorized {
			http.Redirect(w, r, "/reconnect", http.StatusSeeOther)
			return
		}

		sel := ctrl.ActiveSelection()
		if contextState.State == model.StateReady || contextState.State == model.StateStale {
			if sel.LeagueKey == "" {
				// Nothing selected yet; the picker is the actionable next
				// step.
				http.Redirect(w, r, "/select", http.StatusSeeOther)
				return
			}
		}

		var matchupsState model.UIState[model.MatchupsData]
		var standingsState model.UIState[model.StandingsData]
		var matchup *model.Matchup
		if sel.LeagueKey != "" {
			matchupsState = ctrl.Matchups(r.Context(), sel.LeagueKey, sel.TeamKey)
			standingsState = ctrl.Standings(r.Context(), sel.LeagueKey)
			if matchupsState.Data != nil && sel.TeamKey != "" {
				matchup = matchupsState.Data.FindTeamMatchup(sel.TeamKey)
			}
		}

		data := map[string]any{
			"context":     contextState,
			"selection":   sel,
			"persistence": ctrl.PersistenceState(),
			"matchups":    matchupsState,
			"matchup":     matchup,
			"standings":   standingsState,
			"sync":        ctrl.LatestSyncStatus(),
		}
		render.HTML(w, http.StatusOK, "dashboard", data)
	}
}

func selectHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contextState := ctrl.LoadContext(r.Context())
		if contextState.Unauthorized {
			http.Redirect(w, r, "/reconnect", http.StatusSeeOther)
			return
		}

		query := r.URL.Query().Get("q")
		leagues := ctrl.SearchLeagues(query)

		// When a league is picked the page also offers its teams.
		var teamsState model.UIState[model.LeagueTeamsData]
		leagueKey := r.URL.Query().Get("league_key")
		if leagueKey == "" {
			leagueKey = ctrl.ActiveSelection().LeagueKey
		}
		if leagueKey != "" {
			teamsState = ctrl.LeagueTeams(r.Context(), leagueKey)
		}

		data := map[string]any{
			"context":     contextState,
			"q":           query,
			"leagues":     leagues,
			"leagueKey":   leagueKey,
			"teams":       teamsState,
			"selection":   ctrl.ActiveSelection(),
			"persistence": ctrl.PersistenceState(),
		}
		render.HTML(w, http.StatusOK, "select", data)
	}
}

func setActiveHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		leagueKey := r.PostForm.Get("league_key")
		if leagueKey == "" {
			render.HTML(w, http.StatusBadRequest, "400", "league_key must be provided")
			return
		}
		teamKey := r.PostForm.Get("team_key")

		// Always succeeds for local-state purposes; a failed backend write
		// only demotes the persistence indicator.
		ctrl.SetActiveContext(r.Context(), leagueKey, teamKey)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func matchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := ctrl.ActiveSelection()
		if sel.LeagueKey == "" {
			http.Redirect(w, r, "/select", http.StatusSeeOther)
			return
		}

		state := ctrl.Matchups(r.Context(), sel.LeagueKey, sel.TeamKey)
		if state.Unauthorized {
			http.Redirect(w, r, "/reconnect", http.StatusSeeOther)
			return
		}

		data := map[string]any{
			"selection": sel,
			"state":     state,
		}
		render.HTML(w, http.StatusOK, "matchups", data)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := ctrl.ActiveSelection()
		if sel.LeagueKey == "" {
			http.Redirect(w, r, "/select", http.StatusSeeOther)
			return
		}

		state := ctrl.Standings(r.Context(), sel.LeagueKey)
		if state.Unauthorized {
			http.Redirect(w, r, "/reconnect", http.StatusSeeOther)
			return
		}

		data := map[string]any{
			"selection": sel,
			"state":     state,
		}
		render.HTML(w, http.StatusOK, "standings", data)
	}
}

func rosterHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := ctrl.ActiveSelection()
		if sel.TeamKey == "" {
			http.Redirect(w, r, "/select", http.StatusSeeOther)
			return
		}

		state := ctrl.Roster(r.Context(), sel.TeamKey)
		if state.Unauthorized {
			http.Redirect(w, r, "/reconnect", http.StatusSeeOther)
			return
		}

		data := map[string]any{
			"selection": sel,
			"state":     state,
		}
		render.HTML(w, http.StatusOK, "roster", data)
	}
}

func settingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := ctrl.ActiveSelection()
		if sel.LeagueKey == "" {
			http.Redirect(w, r, "/select", http.StatusSeeOther)
			return
		}

		state := ctrl.Settings(r.Context(), sel.LeagueKey)
		if state.Unauthorized {
			http.Redirect(w, r, "/reconnect", http.StatusSeeOther)
			return
		}

		data := map[string]any{
			"selection": sel,
			"state":     state,
		}
		render.HTML(w, http.StatusOK, "settings", data)
	}
}

func managersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := ctrl.ActiveSelection()
		if sel.LeagueKey == "" {
			http.Redirect(w, r, "/select", http.StatusSeeOther)
			return
		}

		state := ctrl.LeagueManagers(r.Context(), sel.LeagueKey)
		if state.Unauthorized {
			http.Redirect(w, r, "/reconnect", http.StatusSeeOther)
			return
		}

		data := map[string]any{
			"selection": sel,
			"state":     state,
		}
		render.HTML(w, http.StatusOK, "managers", data)
	}
}

func syncStatusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := ctrl.ActiveSelection()
		state := ctrl.SyncStatus(r.Context(), sel.LeagueKey)
		if state.Unauthorized {
			http.Redirect(w, r, "/reconnect", http.StatusSeeOther)
			return
		}

		// Fixed tracked-domain rows; domains the backend never reported
		// show up as missing instead of being dropped.
		type domainRow struct {
			Key         string
			DisplayName string
			Status      model.SyncDomainStatus
		}
		rows := make([]domainRow, 0, len(model.SyncDomains))
		if state.Data != nil {
			for _, key := range model.SyncDomains {
				rows = append(rows, domainRow{
					Key:         key,
					DisplayName: model.SyncDomainDisplayNames[key],
					Status:      state.Data.Domain(key),
				})
			}
		}

		data := map[string]any{
			"selection": sel,
			"state":     state,
			"rows":      rows,
		}
		render.HTML(w, http.StatusOK, "sync", data)
	}
}

func reconnectHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "reconnect", nil)
	}
}
