package controller

import (
	"context"

	"github.com/brndconsulting/nba-ui/model"
)

func (c *controller) LoadContext(ctx context.Context) model.UIState[model.ContextData] {
	state := dispatch(ctx, &c.contextCell, "", c.clock, "context_leagues",
		func(ctx context.Context) (*model.ContextData, *model.Meta, error) {
			data, meta, err := c.client.Context(ctx)
			if err == nil && data != nil && meta != nil {
				c.seedSelection(ctx, data, meta)
			}
			return data, meta, err
		},
		func(d *model.ContextData) bool { return d.Empty() })

	if state.State == model.StateError {
		c.noteContextError()
	}
	return state
}

func (c *controller) LeagueTeams(ctx context.Context, leagueKey string) model.UIState[model.LeagueTeamsData] {
	return dispatch(ctx, &c.teamsCell, leagueKey, c.clock, "league_teams",
		func(ctx context.Context) (*model.LeagueTeamsData, *model.Meta, error) {
			return c.client.LeagueTeams(ctx, leagueKey)
		},
		func(d *model.LeagueTeamsData) bool { return d.Empty() })
}

func (c *controller) Matchups(ctx context.Context, leagueKey, teamKey string) model.UIState[model.MatchupsData] {
	return dispatch(ctx, &c.matchupsCell, leagueKey+"|"+teamKey, c.clock, "matchups",
		func(ctx context.Context) (*model.MatchupsData, *model.Meta, error) {
			return c.client.Matchups(ctx, leagueKey, teamKey)
		},
		func(d *model.MatchupsData) bool { return d.Empty() })
}

func (c *controller) Standings(ctx context.Context, leagueKey string) model.UIState[model.StandingsData] {
	return dispatch(ctx, &c.standingsCell, leagueKey, c.clock, "standings",
		func(ctx context.Context) (*model.StandingsData, *model.Meta, error) {
			return c.client.Standings(ctx, leagueKey)
		},
		func(d *model.StandingsData) bool { return d.Empty() })
}

func (c *controller) Settings(ctx context.Context, leagueKey string) model.UIState[model.SettingsData] {
	return dispatch(ctx, &c.settingsCell, leagueKey, c.clock, "settings",
		func(ctx context.Context) (*model.SettingsData, *model.Meta, error) {
			return c.client.Settings(ctx, leagueKey)
		},
		func(d *model.SettingsData) bool { return d.Empty() })
}

func (c *controller) Roster(ctx context.Context, teamKey string) model.UIState[model.RosterData] {
	return dispatch(ctx, &c.rosterCell, teamKey, c.clock, "roster",
		func(ctx context.Context) (*model.RosterData, *model.Meta, error) {
			return c.client.Roster(ctx, teamKey)
		},
		func(d *model.RosterData) bool { return d.Empty() })
}

func (c *controller) LeagueManagers(ctx context.Context, leagueKey string) model.UIState[model.LeagueManagersData] {
	return dispatch(ctx, &c.managersCell, leagueKey, c.clock, "league_managers",
		func(ctx context.Context) (*model.LeagueManagersData, *model.Meta, error) {
			return c.client.LeagueManagers(ctx, leagueKey)
		},
		func(d *model.LeagueManagersData) bool { return d.Empty() })
}

func (c *controller) OwnerProfile(ctx context.Context) model.UIState[model.OwnerProfileData] {
	return dispatch(ctx, &c.profileCell, "", c.clock, "owner_profile",
		func(ctx context.Context) (*model.OwnerProfileData, *model.Meta, error) {
			return c.client.OwnerProfile(ctx)
		},
		func(d *model.OwnerProfileData) bool { return d.Empty() })
}
