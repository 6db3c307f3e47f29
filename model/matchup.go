package model

// Matchup is the normalized form of one Yahoo matchup. It is derived
// entirely from the raw backend payload and recomputed on every fetch.
// Team order follows the backend's "0"/"1" slot order; consumers must match
// teams by TeamKey, not by position, when deciding which side is "mine".
type Matchup struct {
	Week          int
	WeekStart     string
	WeekEnd       string
	Status        string
	IsPlayoffs    bool
	IsConsolation bool
	IsTied        bool
	WinnerTeamKey string
	Teams         []MatchupTeam
	StatWinners   []StatWinner
}

// MatchupTeam is one side of a matchup, flattened out of Yahoo's
// array-of-singleton-objects team representation.
type MatchupTeam struct {
	TeamKey        string
	TeamID         string
	Name           string
	LogoURL        string
	Managers       []Manager
	PointsTotal    *float64 // nil when the backend sent nothing numeric
	Stats          []StatValue
	RemainingGames int
	CompletedGames int
}

type Manager struct {
	ManagerID string `json:"manager_id"`
	Nickname  string `json:"nickname"`
	ImageURL  string `json:"image_url,omitempty"`
}

// StatValue keeps stat values as strings; Yahoo reports some categories as
// ratios like ".504" and display code should not round-trip them through
// floats.
type StatValue struct {
	StatID string
	Value  string
}

type StatWinner struct {
	StatID        string
	WinnerTeamKey string
	IsTied        bool
}

// Team returns the matchup side with the given key, or nil.
func (m *Matchup) Team(teamKey string) *MatchupTeam {
	for i := range m.Teams {
		if m.Teams[i].TeamKey == teamKey {
			return &m.Teams[i]
		}
	}
	return nil
}

// Opponent returns the side that is not teamKey, or nil for a bye or an
// incomplete draw.
func (m *Matchup) Opponent(teamKey string) *MatchupTeam {
	for i := range m.Teams {
		if m.Teams[i].TeamKey != teamKey {
			return &m.Teams[i]
		}
	}
	return nil
}

// MatchupsData is the normalized payload of /v1/matchups.
type MatchupsData struct {
	LeagueKey   string
	Week        int
	CurrentWeek int
	Matchups    []Matchup
}

func (d *MatchupsData) Empty() bool {
	return len(d.Matchups) == 0
}

// FindTeamMatchup returns the matchup that includes teamKey, or nil.
func (d *MatchupsData) FindTeamMatchup(teamKey string) *Matchup {
	for i := range d.Matchups {
		if d.Matchups[i].Team(teamKey) != nil {
			return &d.Matchups[i]
		}
	}
	return nil
}
