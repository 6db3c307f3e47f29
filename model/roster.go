package model

// RosterData is the payload of /v1/roster.
type RosterData struct {
	TeamKey      string         `json:"team_key"`
	LeagueKey    string         `json:"league_key"`
	PlayersCount int            `json:"players_count,omitempty"`
	Players      []RosterPlayer `json:"players"`
}

func (d *RosterData) Empty() bool {
	return len(d.Players) == 0
}

type RosterPlayer struct {
	PlayerKey          string            `json:"player_key"`
	PlayerID           string            `json:"player_id"`
	Name               PlayerName        `json:"name"`
	DisplayPosition    string            `json:"display_position"`
	PrimaryPosition    string            `json:"primary_position,omitempty"`
	SelectedPosition   *SelectedPosition `json:"selected_position,omitempty"`
	TeamFullName       string            `json:"editorial_team_full_name,omitempty"`
	TeamAbbr           string            `json:"editorial_team_abbr,omitempty"`
	ImageURL           string            `json:"image_url,omitempty"`
	Status             string            `json:"status,omitempty"` // GTD, IL, O, ...
	StatusFull         string            `json:"status_full,omitempty"`
	InjuryNote         string            `json:"injury_note,omitempty"`
	GamesWeekTotal     int               `json:"games_week_total,omitempty"`
	GamesRemainingWeek int               `json:"games_remaining_week,omitempty"`
}

type PlayerName struct {
	Full  string `json:"full"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

type SelectedPosition struct {
	Position     string  `json:"position"`
	CoverageType string  `json:"coverage_type,omitempty"`
	Week         FlexInt `json:"week,omitempty"`
}

// LeagueManagersData is the payload of /v1/league-managers.
type LeagueManagersData struct {
	LeagueKey     string          `json:"league_key"`
	ManagersCount int             `json:"managers_count,omitempty"`
	Managers      []LeagueManager `json:"managers"`
}

func (d *LeagueManagersData) Empty() bool {
	return len(d.Managers) == 0
}

type LeagueManager struct {
	ManagerID      string   `json:"manager_id"`
	Nickname       string   `json:"nickname"`
	GUID           string   `json:"guid,omitempty"`
	IsCommissioner FlexBool `json:"is_commissioner,omitempty"`
	ImageURL       string   `json:"image_url,omitempty"`
	FeloScore      string   `json:"felo_score,omitempty"`
	FeloTier       string   `json:"felo_tier,omitempty"`
	TeamKey        string   `json:"team_key"`
	TeamName       string   `json:"team_name"`
}

// OwnerProfileData is the payload of /v1/owner-profile.
type OwnerProfileData struct {
	OwnerID      string `json:"owner_id"`
	Nickname     string `json:"nickname,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	LeaguesCount int    `json:"leagues_count,omitempty"`
}

func (d *OwnerProfileData) Empty() bool {
	return d.OwnerID == "" && d.Nickname == ""
}
