package dashapi

import (
	"encoding/json"
	"reflect"
	"testing"
)

const matchupPayload = `{
	"league_key": "nba.l.555",
	"week": 4,
	"current_week": 4,
	"matchups": [
		{
			"week": "4",
			"week_start": "2024-11-11",
			"week_end": "2024-11-17",
			"status": "midevent",
			"is_playoffs": "1",
			"is_consolation": "0",
			"is_tied": 1,
			"winner_team_key": "nba.l.555.t.2",
			"stat_winners": [
				{"stat_winner": {"stat_id": "12", "winner_team_key": "nba.l.555.t.2"}},
				{"stat_winner": {"stat_id": "15", "is_tied": "1"}}
			],
			"0": {
				"teams": {
					"count": 2,
					"0": {
						"team": [
							[
								{"team_key": "nba.l.555.t.2"},
								{"team_id": "2"},
								{"name": "Alley Oops"},
								{"team_logos": [{"team_logo": {"size": "large", "url": "https://img.example/t2.png"}}]},
								{"managers": [{"manager": {"manager_id": "11", "nickname": "Dana"}}]}
							],
							{
								"team_stats": {"stats": [
									{"stat": {"stat_id": "12", "value": "415"}},
									{"stat": {"stat_id": "5", "value": ".472"}}
								]},
								"team_points": {"coverage_type": "week", "week": "4", "total": "88.5"},
								"team_remaining_games": {"total": {"remaining_games": 7, "completed_games": 13}}
							}
						]
					},
					"1": {
						"team": [
							[
								{"team_key": "nba.l.555.t.9"},
								{"team_id": "9"},
								{"name": "Full Court Press"}
							],
							{
								"team_points": {"coverage_type": "week", "week": "4", "total": "not-a-number"}
							}
						]
					}
				}
			}
		},
		{
			"week": "4",
			"status": "preevent",
			"is_playoffs": "0",
			"0": {
				"teams": {
					"count": 1,
					"0": {
						"team": [
							[{"team_key": "nba.l.555.t.5"}, {"team_id": "5"}, {"name": "Waiting Room"}],
							{}
						]
					}
				}
			}
		}
	]
}`

func TestNormalizeMatchups(t *testing.T) {
	data := normalizeMatchups(json.RawMessage(matchupPayload))

	if data.LeagueKey != "nba.l.555" || data.Week != 4 || data.CurrentWeek != 4 {
		t.Errorf("unexpected header fields: %+v", data)
	}
	if len(data.Matchups) != 2 {
		t.Fatalf("expected 2 matchups, got %d", len(data.Matchups))
	}

	m := data.Matchups[0]
	if !m.IsPlayoffs || m.IsConsolation {
		t.Errorf("flag coercion failed: playoffs=%v consolation=%v", m.IsPlayoffs, m.IsConsolation)
	}
	if !m.IsTied {
		t.Error("expected numeric 1 to coerce to a true tie flag")
	}
	if m.WinnerTeamKey != "nba.l.555.t.2" {
		t.Errorf("unexpected winner: %s", m.WinnerTeamKey)
	}
	if len(m.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(m.Teams))
	}

	mine := m.Team("nba.l.555.t.2")
	if mine == nil {
		t.Fatal("expected to find team by key")
	}
	if mine.Name != "Alley Oops" || mine.TeamID != "2" {
		t.Errorf("unexpected team fields: %+v", mine)
	}
	if mine.LogoURL != "https://img.example/t2.png" {
		t.Errorf("unexpected logo url: %s", mine.LogoURL)
	}
	if len(mine.Managers) != 1 || mine.Managers[0].Nickname != "Dana" {
		t.Errorf("unexpected managers: %+v", mine.Managers)
	}
	if mine.PointsTotal == nil || *mine.PointsTotal != 88.5 {
		t.Errorf("unexpected points: %v", mine.PointsTotal)
	}
	if len(mine.Stats) != 2 || mine.Stats[1].Value != ".472" {
		t.Errorf("unexpected stats: %+v", mine.Stats)
	}
	if mine.RemainingGames != 7 || mine.CompletedGames != 13 {
		t.Errorf("unexpected game counts: %d / %d", mine.RemainingGames, mine.CompletedGames)
	}

	opp := m.Opponent("nba.l.555.t.2")
	if opp == nil || opp.TeamKey != "nba.l.555.t.9" {
		t.Fatalf("unexpected opponent: %+v", opp)
	}
	if opp.PointsTotal != nil {
		t.Errorf("expected non-numeric points to normalize to nil, got %v", *opp.PointsTotal)
	}

	if len(m.StatWinners) != 2 {
		t.Fatalf("expected 2 stat winners, got %d", len(m.StatWinners))
	}
	if m.StatWinners[0].WinnerTeamKey != "nba.l.555.t.2" || m.StatWinners[0].IsTied {
		t.Errorf("unexpected stat winner: %+v", m.StatWinners[0])
	}
	if !m.StatWinners[1].IsTied {
		t.Error("expected second stat winner to be tied")
	}
}

func TestNormalizeMatchupSingleSlot(t *testing.T) {
	data := normalizeMatchups(json.RawMessage(matchupPayload))

	bye := data.Matchups[1]
	if len(bye.Teams) != 1 {
		t.Fatalf("expected 1 team for the unscheduled matchup, got %d", len(bye.Teams))
	}
	if bye.Teams[0].TeamKey != "nba.l.555.t.5" {
		t.Errorf("unexpected team key: %s", bye.Teams[0].TeamKey)
	}
	if bye.Opponent("nba.l.555.t.5") != nil {
		t.Error("expected no opponent for a single-slot matchup")
	}

	if data.FindTeamMatchup("nba.l.555.t.5") == nil {
		t.Error("expected to find the single-slot matchup by team key")
	}
	if data.FindTeamMatchup("nba.l.555.t.404") != nil {
		t.Error("expected no matchup for an unknown team key")
	}
}

func TestNormalizeMatchupsDeterministic(t *testing.T) {
	first := normalizeMatchups(json.RawMessage(matchupPayload))
	second := normalizeMatchups(json.RawMessage(matchupPayload))
	if !reflect.DeepEqual(first, second) {
		t.Error("expected normalization to produce identical results for identical input")
	}
}

func TestNormalizeMatchupsEmpty(t *testing.T) {
	data := normalizeMatchups(json.RawMessage(`{"league_key": "nba.l.555", "week": 4, "matchups": []}`))
	if !data.Empty() {
		t.Error("expected an empty matchups payload")
	}
}
