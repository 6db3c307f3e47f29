package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/brndconsulting/nba-ui/model"
)

type C struct {
	mock.Mock
}

func (c *C) LoadContext(ctx context.Context) model.UIState[model.ContextData] {
	args := c.Called(ctx)
	return args.Get(0).(model.UIState[model.ContextData])
}

func (c *C) LeagueTeams(ctx context.Context, leagueKey string) model.UIState[model.LeagueTeamsData] {
	args := c.Called(ctx, leagueKey)
	return args.Get(0).(model.UIState[model.LeagueTeamsData])
}

func (c *C) Matchups(ctx context.Context, leagueKey, teamKey string) model.UIState[model.MatchupsData] {
	args := c.Called(ctx, leagueKey, teamKey)
	return args.Get(0).(model.UIState[model.MatchupsData])
}

func (c *C) Standings(ctx context.Context, leagueKey string) model.UIState[model.StandingsData] {
	args := c.Called(ctx, leagueKey)
	return args.Get(0).(model.UIState[model.StandingsData])
}

func (c *C) Settings(ctx context.Context, leagueKey string) model.UIState[model.SettingsData] {
	args := c.Called(ctx, leagueKey)
	return args.Get(0).(model.UIState[model.SettingsData])
}

func (c *C) Roster(ctx context.Context, teamKey string) model.UIState[model.RosterData] {
	args := c.Called(ctx, teamKey)
	return args.Get(0).(model.UIState[model.RosterData])
}

func (c *C) SyncStatus(ctx context.Context, leagueKey string) model.UIState[model.SyncStatusData] {
	args := c.Called(ctx, leagueKey)
	return args.Get(0).(model.UIState[model.SyncStatusData])
}

func (c *C) LeagueManagers(ctx context.Context, leagueKey string) model.UIState[model.LeagueManagersData] {
	args := c.Called(ctx, leagueKey)
	return args.Get(0).(model.UIState[model.LeagueManagersData])
}

func (c *C) OwnerProfile(ctx context.Context) model.UIState[model.OwnerProfileData] {
	args := c.Called(ctx)
	return args.Get(0).(model.UIState[model.OwnerProfileData])
}

func (c *C) LatestSyncStatus() model.UIState[model.SyncStatusData] {
	args := c.Called()
	return args.Get(0).(model.UIState[model.SyncStatusData])
}

func (c *C) ActiveSelection() model.ActiveSelection {
	args := c.Called()
	return args.Get(0).(model.ActiveSelection)
}

func (c *C) PersistenceState() model.PersistenceState {
	args := c.Called()
	return args.Get(0).(model.PersistenceState)
}

func (c *C) SetActiveContext(ctx context.Context, leagueKey, teamKey string) bool {
	args := c.Called(ctx, leagueKey, teamKey)
	return args.Bool(0)
}

func (c *C) SearchLeagues(query string) []model.League {
	args := c.Called(query)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r
}

func (c *C) RunPeriodicSyncUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
