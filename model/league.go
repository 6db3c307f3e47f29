package model

// League as returned by /v1/context. Teams are not nested here; they are
// fetched lazily from /v1/league-teams when a league becomes active.
type League struct {
	LeagueKey   string   `json:"league_key"`
	LeagueID    string   `json:"league_id,omitempty"`
	Name        string   `json:"name"`
	Season      FlexInt  `json:"season"`
	GameKey     string   `json:"game_key"`
	ScoringType string   `json:"scoring_type,omitempty"`
	NumTeams    int      `json:"num_teams,omitempty"`
	CurrentWeek FlexInt  `json:"current_week,omitempty"`
	LogoURL     string   `json:"logo_url,omitempty"`
	URL         string   `json:"url,omitempty"`
	IsFinished  FlexBool `json:"is_finished,omitempty"`
}

// Team as returned by /v1/league-teams.
type Team struct {
	TeamKey        string `json:"team_key"`
	TeamID         string `json:"team_id"`
	Name           string `json:"name"`
	ManagerID      string `json:"manager_id,omitempty"`
	ManagerName    string `json:"manager_name,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	WaiverPriority int    `json:"waiver_priority,omitempty"`
	NumberOfMoves  int    `json:"number_of_moves,omitempty"`
	NumberOfTrades int    `json:"number_of_trades,omitempty"`
}

// ActiveSelection is the user's current working context. The authoritative
// copy may live on the backend, but the UI always reflects the local shadow.
type ActiveSelection struct {
	LeagueKey string
	TeamKey   string
}

func (s ActiveSelection) IsZero() bool {
	return s.LeagueKey == "" && s.TeamKey == ""
}

// PersistenceState says how the local selection shadow relates to the
// backend copy. Losing the ability to write the selection never blocks
// using the app, so a failed write demotes to local instead of erroring.
type PersistenceState string

const (
	// Local selection matches the last confirmed backend acknowledgment.
	PersistenceSynced PersistenceState = "synced"
	// Selection applied optimistically; the backend write failed or the
	// backend does not persist selections at all.
	PersistenceLocal PersistenceState = "local"
	// The initial context fetch itself failed.
	PersistenceError PersistenceState = "error"
)

// ContextData is the payload of /v1/context.
type ContextData struct {
	OwnerID         string   `json:"owner_id,omitempty"`
	LeaguesCount    int      `json:"leagues_count,omitempty"`
	Leagues         []League `json:"leagues"`
	ActiveLeagueKey string   `json:"active_league_key,omitempty"`
	ActiveTeamKey   string   `json:"active_team_key,omitempty"`
}

// Empty reports whether the payload is semantically empty. An owner with
// zero leagues is a legitimate state, not an error.
func (d *ContextData) Empty() bool {
	return len(d.Leagues) == 0
}

// FindLeague returns the league with the given key, or nil.
func (d *ContextData) FindLeague(leagueKey string) *League {
	for i := range d.Leagues {
		if d.Leagues[i].LeagueKey == leagueKey {
			return &d.Leagues[i]
		}
	}
	return nil
}

// LeagueTeamsData is the payload of /v1/league-teams.
type LeagueTeamsData struct {
	LeagueKey  string `json:"league_key"`
	TeamsCount int    `json:"teams_count,omitempty"`
	Teams      []Team `json:"teams"`
}

func (d *LeagueTeamsData) Empty() bool {
	return len(d.Teams) == 0
}

// FindTeam returns the team with the given key, or nil.
func (d *LeagueTeamsData) FindTeam(teamKey string) *Team {
	for i := range d.Teams {
		if d.Teams[i].TeamKey == teamKey {
			return &d.Teams[i]
		}
	}
	return nil
}
