package model

// SettingsData is the payload of /v1/settings: the league's scoring rules,
// stat categories, and roster layout.
type SettingsData struct {
	LeagueKey        string           `json:"league_key"`
	LeagueName       string           `json:"league_name,omitempty"`
	Season           FlexInt          `json:"season,omitempty"`
	GameCode         string           `json:"game_code,omitempty"`
	ScoringType      string           `json:"scoring_type,omitempty"`
	IsCategories     bool             `json:"is_categories,omitempty"`
	IsPoints         bool             `json:"is_points,omitempty"`
	NumTeams         int              `json:"num_teams,omitempty"`
	NumPlayoffTeams  int              `json:"num_playoff_teams,omitempty"`
	PlayoffStartWeek int              `json:"playoff_start_week,omitempty"`
	CurrentWeek      FlexInt          `json:"current_week,omitempty"`
	StartWeek        FlexInt          `json:"start_week,omitempty"`
	EndWeek          FlexInt          `json:"end_week,omitempty"`
	StartDate        string           `json:"start_date,omitempty"`
	EndDate          string           `json:"end_date,omitempty"`
	TradeEndDate     string           `json:"trade_end_date,omitempty"`
	WaiverType       string           `json:"waiver_type,omitempty"`
	WaiverRule       string           `json:"waiver_rule,omitempty"`
	UsesFAAB         bool             `json:"uses_faab,omitempty"`
	UsesPlayoff      bool             `json:"uses_playoff,omitempty"`
	StatCategories   []StatCategory   `json:"stat_categories,omitempty"`
	RosterPositions  []RosterPosition `json:"roster_positions,omitempty"`
}

func (d *SettingsData) Empty() bool {
	return len(d.StatCategories) == 0 && len(d.RosterPositions) == 0
}

type StatCategory struct {
	StatID            int    `json:"stat_id"`
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	SortOrder         int    `json:"sort_order,omitempty"`
	IsOnlyDisplayStat bool   `json:"is_only_display_stat,omitempty"`
	PositionType      string `json:"position_type,omitempty"`
}

type RosterPosition struct {
	Position           string `json:"position"`
	PositionType       string `json:"position_type,omitempty"`
	Count              int    `json:"count,omitempty"`
	IsStartingPosition bool   `json:"is_starting_position,omitempty"`
}
