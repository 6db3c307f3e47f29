package controller

import (
	"context"
	"testing"
)

func TestSearchLeagues(t *testing.T) {
	ctrl, _ := newTestController(t)

	// Before any context fetch there is nothing to search.
	if got := ctrl.SearchLeagues("heroes"); got != nil {
		t.Errorf("expected nil before context load, got %v", got)
	}

	ctrl.LoadContext(context.Background())

	tests := map[string]struct {
		query   string
		exNames []string
	}{
		"empty query returns all": {query: "", exNames: []string{"Hardwood Heroes", "Downtown Dunkers"}},
		"exact word":              {query: "heroes", exNames: []string{"Hardwood Heroes"}},
		"case folded":             {query: "DUNK", exNames: []string{"Downtown Dunkers"}},
		"fuzzy":                   {query: "hrdwd", exNames: []string{"Hardwood Heroes"}},
		"no match":                {query: "zzzz", exNames: []string{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ctrl.SearchLeagues(tc.query)
			if len(got) != len(tc.exNames) {
				t.Fatalf("expected %d leagues, got %d", len(tc.exNames), len(got))
			}
			for i, l := range got {
				if l.Name != tc.exNames[i] {
					t.Errorf("expected %q at %d, got %q", tc.exNames[i], i, l.Name)
				}
			}
		})
	}
}
