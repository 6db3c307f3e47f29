package controller

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/brndconsulting/nba-ui/model"
)

// SearchLeagues fuzzy-matches the query against the league names in the
// most recently loaded context. An empty query returns every league in its
// original order.
func (c *controller) SearchLeagues(query string) []model.League {
	state := c.contextCell.current()
	if state.Data == nil {
		return nil
	}

	leagues := state.Data.Leagues
	if query == "" {
		return leagues
	}

	names := make([]string, len(leagues))
	for i, l := range leagues {
		names[i] = l.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	results := make([]model.League, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, leagues[r.OriginalIndex])
	}
	return results
}
