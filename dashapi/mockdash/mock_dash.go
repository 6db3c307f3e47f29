package mockdash

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/brndconsulting/nba-ui/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) Context(ctx context.Context) (*model.ContextData, *model.Meta, error) {
	args := c.Called(ctx)
	return payload[model.ContextData](args)
}

func (c *Client) LeagueTeams(ctx context.Context, leagueKey string) (*model.LeagueTeamsData, *model.Meta, error) {
	args := c.Called(ctx, leagueKey)
	return payload[model.LeagueTeamsData](args)
}

func (c *Client) Matchups(ctx context.Context, leagueKey, teamKey string) (*model.MatchupsData, *model.Meta, error) {
	args := c.Called(ctx, leagueKey, teamKey)
	return payload[model.MatchupsData](args)
}

func (c *Client) Standings(ctx context.Context, leagueKey string) (*model.StandingsData, *model.Meta, error) {
	args := c.Called(ctx, leagueKey)
	return payload[model.StandingsData](args)
}

func (c *Client) Settings(ctx context.Context, leagueKey string) (*model.SettingsData, *model.Meta, error) {
	args := c.Called(ctx, leagueKey)
	return payload[model.SettingsData](args)
}

func (c *Client) Roster(ctx context.Context, teamKey string) (*model.RosterData, *model.Meta, error) {
	args := c.Called(ctx, teamKey)
	return payload[model.RosterData](args)
}

func (c *Client) SyncStatus(ctx context.Context, leagueKey string) (*model.SyncStatusData, *model.Meta, error) {
	args := c.Called(ctx, leagueKey)
	return payload[model.SyncStatusData](args)
}

func (c *Client) LeagueManagers(ctx context.Context, leagueKey string) (*model.LeagueManagersData, *model.Meta, error) {
	args := c.Called(ctx, leagueKey)
	return payload[model.LeagueManagersData](args)
}

func (c *Client) OwnerProfile(ctx context.Context) (*model.OwnerProfileData, *model.Meta, error) {
	args := c.Called(ctx)
	return payload[model.OwnerProfileData](args)
}

func (c *Client) SetActiveContext(ctx context.Context, leagueKey, teamKey string) error {
	args := c.Called(ctx, leagueKey, teamKey)
	return args.Error(0)
}

func payload[T any](args mock.Arguments) (*T, *model.Meta, error) {
	var data *T
	if args.Get(0) != nil {
		data = args.Get(0).(*T)
	}

	var meta *model.Meta
	if args.Get(1) != nil {
		meta = args.Get(1).(*model.Meta)
	}

	return data, meta, args.Error(2)
}
