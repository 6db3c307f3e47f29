package model

// StandingsData is the payload of /v1/standings.
type StandingsData struct {
	LeagueKey  string          `json:"league_key"`
	Week       FlexInt         `json:"week,omitempty"`
	TeamsCount int             `json:"teams_count,omitempty"`
	Teams      []StandingsTeam `json:"teams"`
}

func (d *StandingsData) Empty() bool {
	return len(d.Teams) == 0
}

type StandingsTeam struct {
	TeamKey  string        `json:"team_key"`
	TeamID   string        `json:"team_id,omitempty"`
	Name     string        `json:"name"`
	LogoURL  string        `json:"logo_url,omitempty"`
	Standing TeamStandings `json:"team_standings"`
}

type TeamStandings struct {
	Rank          int           `json:"rank"`
	PlayoffSeed   string        `json:"playoff_seed,omitempty"`
	OutcomeTotals OutcomeTotals `json:"outcome_totals"`
	GamesBack     string        `json:"games_back,omitempty"`
}

// OutcomeTotals arrive as strings from Yahoo ("10", ".625") and are kept
// that way for display.
type OutcomeTotals struct {
	Wins       string `json:"wins"`
	Losses     string `json:"losses"`
	Ties       string `json:"ties"`
	Percentage string `json:"percentage"`
}
