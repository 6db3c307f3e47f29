package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/brndconsulting/nba-ui/controller"
	"github.com/brndconsulting/nba-ui/controller/mockcontroller"
	"github.com/brndconsulting/nba-ui/db"
	"github.com/brndconsulting/nba-ui/model"
	"github.com/brndconsulting/nba-ui/testutils"
)

func newTestServer(t *testing.T) (*httptest.Server, *testutils.TestBackend) {
	t.Helper()

	backend := testutils.NewTestBackend()
	t.Cleanup(backend.Close)

	ctrl, err := controller.New(backend.Clock, backend.Client, db.NewMemoryStore())
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	server := httptest.NewServer(getRouter(ctrl, newRender()))
	t.Cleanup(server.Close)
	return server, backend
}

// noRedirect returns a client that reports redirects instead of following
// them.
func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := noRedirect().Get(url)
	if err != nil {
		t.Fatalf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("error reading response body: %v", err)
	}
	return resp, string(b)
}

func TestDashboardHandler(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := get(t, server.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	// The fixture's active team has a live matchup this week.
	if !strings.Contains(body, "Pick and Rollers") {
		t.Error("expected the active team on the dashboard")
	}
	if !strings.Contains(body, "101.5") {
		t.Error("expected the team's point total on the dashboard")
	}
	if !strings.Contains(body, "Standings") {
		t.Error("expected the standings snapshot on the dashboard")
	}
}

func TestDashboardHandler_emptyContext(t *testing.T) {
	server, backend := newTestServer(t)
	backend.Server.SetEmptyContext(true)

	resp, body := get(t, server.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(body, "No leagues yet") {
		t.Error("expected the empty-context section")
	}
}

func TestDashboardHandler_unauthorized(t *testing.T) {
	server, backend := newTestServer(t)
	backend.Server.SetUnauthorized(true)

	resp, _ := get(t, server.URL+"/")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/reconnect" {
		t.Errorf("unexpected redirect location: %s", loc)
	}
}

func TestDashboardHandler_noSelection(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("LoadContext", mock.Anything).Return(model.UIState[model.ContextData]{
		State: model.StateReady,
		Data:  &model.ContextData{Leagues: []model.League{{LeagueKey: "nba.l.1", Name: "Solo"}}},
	})
	ctrl.On("ActiveSelection").Return(model.ActiveSelection{})

	server := httptest.NewServer(getRouter(ctrl, newRender()))
	defer server.Close()

	resp, _ := get(t, server.URL+"/")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/select" {
		t.Errorf("unexpected redirect location: %s", loc)
	}
}

func TestSelectHandler(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := get(t, server.URL+"/select")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Hardwood Heroes") || !strings.Contains(body, "Downtown Dunkers") {
		t.Error("expected both fixture leagues on the picker")
	}
	// The fixture's active league also lists its teams.
	if !strings.Contains(body, "Bench Mob") {
		t.Error("expected the active league's teams on the picker")
	}
}

func TestSelectHandler_search(t *testing.T) {
	server, _ := newTestServer(t)

	// Warm the context cache first; search runs against it.
	get(t, server.URL+"/select")

	resp, body := get(t, server.URL+"/select?q=dunk")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Downtown Dunkers") {
		t.Error("expected the matching league")
	}
	if strings.Contains(body, ">Hardwood Heroes<") {
		t.Error("expected the non-matching league to be filtered out")
	}
}

func TestSetActiveHandler(t *testing.T) {
	server, backend := newTestServer(t)

	// Seed the resolver so the owner id is known before the post.
	get(t, server.URL+"/")

	form := url.Values{"league_key": {"nba.l.67890"}}
	resp, err := noRedirect().PostForm(server.URL+"/select", form)
	if err != nil {
		t.Fatalf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("unexpected redirect location: %s", loc)
	}

	calls := backend.Server.SetActiveCalls()
	if len(calls) != 1 || calls[0].LeagueKey != "nba.l.67890" {
		t.Errorf("unexpected backend calls: %+v", calls)
	}
}

func TestSetActiveHandler_missingLeagueKey(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := noRedirect().PostForm(server.URL+"/select", url.Values{"team_key": {"nba.l.12345.t.4"}})
	if err != nil {
		t.Fatalf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("error reading response body: %v", err)
	}
	if !strings.Contains(string(b), "league_key must be provided") {
		t.Error("response body does not contain expected string")
	}
}

func TestMatchupsHandler_noSelection(t *testing.T) {
	server, _ := newTestServer(t)

	// Without a prior context load there is no selection.
	resp, _ := get(t, server.URL+"/matchups")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/select" {
		t.Errorf("unexpected redirect location: %s", loc)
	}
}

func TestMatchupsHandler(t *testing.T) {
	server, _ := newTestServer(t)
	get(t, server.URL+"/")

	resp, body := get(t, server.URL+"/matchups")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Pick and Rollers") || !strings.Contains(body, "Bench Mob") {
		t.Error("expected both sides of the matchup")
	}
	// The single-slot matchup renders a placeholder opponent.
	if !strings.Contains(body, "TBD") {
		t.Error("expected a TBD cell for the single-slot matchup")
	}
}

func TestStandingsHandler(t *testing.T) {
	server, _ := newTestServer(t)
	get(t, server.URL+"/")

	resp, body := get(t, server.URL+"/standings")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	// Ties show in the record only when non-zero.
	if !strings.Contains(body, "14-6-1") {
		t.Error("expected the tie-inclusive record format")
	}
	if !strings.Contains(body, "12-8") || strings.Contains(body, "12-8-0") {
		t.Error("expected the zero-ties record format")
	}
}

func TestSyncStatusHandler(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := get(t, server.URL+"/sync-status")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(body, "stale") {
		t.Error("expected the overall status on the page")
	}
	// Every tracked domain gets a row, fixture or not.
	for _, name := range []string{"Matchups", "Player Pool", "League Strengths", "Schedule"} {
		if !strings.Contains(body, name) {
			t.Errorf("expected a row for %s", name)
		}
	}
}

func TestRosterHandler(t *testing.T) {
	server, _ := newTestServer(t)
	get(t, server.URL+"/")

	resp, body := get(t, server.URL+"/roster")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Marcus Vale") {
		t.Error("expected a rostered player")
	}
	if !strings.Contains(body, "GTD") {
		t.Error("expected the injury status flag")
	}
}

func TestReconnectHandler(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := get(t, server.URL+"/reconnect")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(body, "no longer authorized") {
		t.Error("expected the reconnect explanation")
	}
}
