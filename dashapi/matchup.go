package dashapi

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/brndconsulting/nba-ui/model"
)

// The /v1/matchups payload passes Yahoo's wire format through almost
// untouched, which means positional keys instead of names: the teams live
// under matchup["0"].teams with slots "0" and "1", and each team is a
// 2-tuple of [array of single-field objects, team-level aggregates]. This
// file flattens all of that into model.Matchup. The schema is partial by
// design; keys the UI does not need are skipped.

func normalizeMatchups(raw json.RawMessage) *model.MatchupsData {
	root := gjson.ParseBytes(raw)

	data := &model.MatchupsData{
		LeagueKey:   root.Get("league_key").String(),
		Week:        int(root.Get("week").Int()),
		CurrentWeek: int(root.Get("current_week").Int()),
		Matchups:    []model.Matchup{},
	}

	root.Get("matchups").ForEach(func(_, m gjson.Result) bool {
		data.Matchups = append(data.Matchups, normalizeMatchup(m))
		return true
	})
	return data
}

func normalizeMatchup(m gjson.Result) model.Matchup {
	out := model.Matchup{
		Week:          int(m.Get("week").Int()),
		WeekStart:     m.Get("week_start").String(),
		WeekEnd:       m.Get("week_end").String(),
		Status:        m.Get("status").String(),
		IsPlayoffs:    yahooFlag(m.Get("is_playoffs")),
		IsConsolation: yahooFlag(m.Get("is_consolation")),
		IsTied:        yahooFlag(m.Get("is_tied")),
		WinnerTeamKey: m.Get("winner_team_key").String(),
		Teams:         []model.MatchupTeam{},
		StatWinners:   []model.StatWinner{},
	}

	// An absent slot is a bye or an incomplete draw, not an error; that
	// side of the matchup simply is not there.
	teams := m.Get("0.teams")
	for _, slot := range []string{"0", "1"} {
		tuple := teams.Get(slot + ".team")
		if !tuple.Exists() {
			continue
		}
		out.Teams = append(out.Teams, normalizeTeam(tuple.Get("0"), tuple.Get("1")))
	}

	m.Get("stat_winners").ForEach(func(_, sw gjson.Result) bool {
		w := sw.Get("stat_winner")
		out.StatWinners = append(out.StatWinners, model.StatWinner{
			StatID:        w.Get("stat_id").String(),
			WinnerTeamKey: w.Get("winner_team_key").String(),
			IsTied:        yahooFlag(w.Get("is_tied")),
		})
		return true
	})

	return out
}

// normalizeTeam merges the array-of-single-field-objects team metadata and
// attaches the team-level aggregates.
func normalizeTeam(info, agg gjson.Result) model.MatchupTeam {
	team := model.MatchupTeam{
		Managers: []model.Manager{},
		Stats:    []model.StatValue{},
	}

	info.ForEach(func(_, item gjson.Result) bool {
		if v := item.Get("team_key"); v.Exists() {
			team.TeamKey = v.String()
		}
		if v := item.Get("team_id"); v.Exists() {
			team.TeamID = v.String()
		}
		if v := item.Get("name"); v.Exists() {
			team.Name = v.String()
		}
		if v := item.Get("team_logos.0.team_logo.url"); v.Exists() {
			team.LogoURL = v.String()
		}
		if v := item.Get("managers"); v.Exists() {
			v.ForEach(func(_, mg gjson.Result) bool {
				mgr := mg.Get("manager")
				if !mgr.Exists() {
					return true
				}
				team.Managers = append(team.Managers, model.Manager{
					ManagerID: mgr.Get("manager_id").String(),
					Nickname:  mgr.Get("nickname").String(),
					ImageURL:  mgr.Get("image_url").String(),
				})
				return true
			})
		}
		return true
	})

	agg.Get("team_stats.stats").ForEach(func(_, s gjson.Result) bool {
		stat := s.Get("stat")
		team.Stats = append(team.Stats, model.StatValue{
			StatID: stat.Get("stat_id").String(),
			Value:  stat.Get("value").String(),
		})
		return true
	})

	team.PointsTotal = parsePoints(agg.Get("team_points.total"))
	team.RemainingGames = int(agg.Get("team_remaining_games.total.remaining_games").Int())
	team.CompletedGames = int(agg.Get("team_remaining_games.total.completed_games").Int())

	return team
}

// parsePoints parses a point total that may be a number, a numeric string,
// or garbage. Anything non-numeric is nil; NaN never reaches the UI.
func parsePoints(v gjson.Result) *float64 {
	if !v.Exists() || v.String() == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// yahooFlag coerces Yahoo's mixed boolean encoding: 1 and "1" are true,
// everything else is false.
func yahooFlag(v gjson.Result) bool {
	return v.String() == "1" || v.String() == "true"
}
