package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/brndconsulting/nba-ui/dashapi"
	"github.com/brndconsulting/nba-ui/db"
	"github.com/brndconsulting/nba-ui/model"
)

// C encapsulates business logic without worrying about any web layers.
// Every fetch method runs one full dispatch cycle (request, envelope
// validation, freshness classification) and returns a discriminated state;
// no error from the backend ever escapes as a Go error.
type C interface {
	LoadContext(ctx context.Context) model.UIState[model.ContextData]
	LeagueTeams(ctx context.Context, leagueKey string) model.UIState[model.LeagueTeamsData]
	Matchups(ctx context.Context, leagueKey, teamKey string) model.UIState[model.MatchupsData]
	Standings(ctx context.Context, leagueKey string) model.UIState[model.StandingsData]
	Settings(ctx context.Context, leagueKey string) model.UIState[model.SettingsData]
	Roster(ctx context.Context, teamKey string) model.UIState[model.RosterData]
	SyncStatus(ctx context.Context, leagueKey string) model.UIState[model.SyncStatusData]
	LeagueManagers(ctx context.Context, leagueKey string) model.UIState[model.LeagueManagersData]
	OwnerProfile(ctx context.Context) model.UIState[model.OwnerProfileData]

	// LatestSyncStatus returns the last accepted sync-status state without
	// issuing a new fetch. The periodic refresh keeps it warm.
	LatestSyncStatus() model.UIState[model.SyncStatusData]

	// ActiveSelection returns the local shadow of the active league/team.
	ActiveSelection() model.ActiveSelection
	PersistenceState() model.PersistenceState
	// SetActiveContext applies the selection locally and then tries to
	// persist it to the backend. Always returns true: the local shadow is
	// the source of truth for the UI even when the backend refuses the
	// write.
	SetActiveContext(ctx context.Context, leagueKey, teamKey string) bool

	// SearchLeagues fuzzy-matches the query against the league names of
	// the most recently loaded context.
	SearchLeagues(query string) []model.League

	RunPeriodicSyncUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock  clock.Clock
	client dashapi.Client
	store  db.Store

	contextCell   cell[model.ContextData]
	teamsCell     cell[model.LeagueTeamsData]
	matchupsCell  cell[model.MatchupsData]
	standingsCell cell[model.StandingsData]
	settingsCell  cell[model.SettingsData]
	rosterCell    cell[model.RosterData]
	syncCell      cell[model.SyncStatusData]
	managersCell  cell[model.LeagueManagersData]
	profileCell   cell[model.OwnerProfileData]

	selMu       sync.Mutex
	ownerID     string
	selection   model.ActiveSelection
	persistence model.PersistenceState
	initialized bool
}

func New(clock clock.Clock, client dashapi.Client, store db.Store) (C, error) {
	c := &controller{
		clock:       clock,
		client:      client,
		store:       store,
		persistence: model.PersistenceSynced,
	}
	return c, nil
}
