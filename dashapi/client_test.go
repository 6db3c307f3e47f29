package dashapi_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/brndconsulting/nba-ui/dashapi"
	"github.com/brndconsulting/nba-ui/testutils"
)

func newTestClient(t *testing.T) (dashapi.Client, *testutils.FakeDashServer) {
	t.Helper()

	server := testutils.NewFakeDashServer()
	t.Cleanup(server.Close)

	c, err := dashapi.New(server.URL(), nil)
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}
	return c, server
}

func TestContext(t *testing.T) {
	c, _ := newTestClient(t)

	data, meta, err := c.Context(context.Background())
	if err != nil {
		t.Fatalf("unexpected error getting context: %v", err)
	}

	if len(data.Leagues) != 2 {
		t.Fatalf("expected 2 leagues, got %d", len(data.Leagues))
	}
	if data.Leagues[0].LeagueKey != testutils.LeagueKey {
		t.Errorf("unexpected first league key: %s", data.Leagues[0].LeagueKey)
	}
	if data.Leagues[0].Season.Int() != 2024 || data.Leagues[1].Season.Int() != 2024 {
		t.Error("expected both season encodings to decode to 2024")
	}
	if data.ActiveLeagueKey != testutils.LeagueKey || data.ActiveTeamKey != testutils.TeamKey {
		t.Errorf("unexpected active keys: %s / %s", data.ActiveLeagueKey, data.ActiveTeamKey)
	}

	if meta == nil {
		t.Fatal("expected meta on context response")
	}
	if meta.OwnerID != testutils.OwnerID {
		t.Errorf("unexpected owner id: %s", meta.OwnerID)
	}
	if got := meta.LastSyncAt.For("context_leagues"); got != testutils.SyncTime {
		t.Errorf("expected per-domain sync stamp, got %q", got)
	}
}

func TestContextEmpty(t *testing.T) {
	c, server := newTestClient(t)
	server.SetEmptyContext(true)

	data, meta, err := c.Context(context.Background())
	if err != nil {
		t.Fatalf("unexpected error getting context: %v", err)
	}
	if !data.Empty() {
		t.Error("expected an empty context payload")
	}
	if meta == nil {
		t.Error("expected meta even on an empty payload")
	}
}

func TestUnknownLeagueIsNoData(t *testing.T) {
	c, _ := newTestClient(t)

	data, meta, err := c.Standings(context.Background(), "nba.l.99999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data != nil {
		t.Errorf("expected no payload for an unknown league, got %+v", data)
	}
	if meta == nil {
		t.Error("expected meta on a null-data response")
	}
}

func TestDeclaredFailure(t *testing.T) {
	c, server := newTestClient(t)
	server.FailEndpoint("standings")

	_, _, err := c.Standings(context.Background(), testutils.LeagueKey)
	if err == nil {
		t.Fatal("expected an error, but got none")
	}

	var declared *dashapi.DeclaredError
	if !errors.As(err, &declared) {
		t.Fatalf("expected a DeclaredError, got %T: %v", err, err)
	}
	if declared.Code() != "UPSTREAM_TIMEOUT" {
		t.Errorf("unexpected error code: %s", declared.Code())
	}
	// The backend's message must pass through untouched.
	if declared.Error() != "Yahoo did not respond in time" {
		t.Errorf("unexpected error message: %s", declared.Error())
	}
}

func TestContractViolation(t *testing.T) {
	c, server := newTestClient(t)
	server.BreakEndpoint("settings")

	_, _, err := c.Settings(context.Background(), testutils.LeagueKey)
	if err == nil {
		t.Fatal("expected an error, but got none")
	}

	var verr *dashapi.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %T: %v", err, err)
	}
}

func TestUnauthorized(t *testing.T) {
	c, server := newTestClient(t)
	server.SetUnauthorized(true)

	_, _, err := c.Roster(context.Background(), testutils.TeamKey)
	if !errors.Is(err, dashapi.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	if err := c.SetActiveContext(context.Background(), testutils.LeagueKey, testutils.TeamKey); !errors.Is(err, dashapi.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized from set-active, got %v", err)
	}
	// A 401 on the JSON attempt must not trigger the query fallback.
	if calls := server.SetActiveCalls(); len(calls) != 0 {
		t.Errorf("expected no recorded set-active calls, got %d", len(calls))
	}
}

func TestSetActiveContext(t *testing.T) {
	t.Run("json accepted", func(t *testing.T) {
		c, server := newTestClient(t)

		if err := c.SetActiveContext(context.Background(), testutils.LeagueKey, testutils.TeamKey); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		calls := server.SetActiveCalls()
		if len(calls) != 1 {
			t.Fatalf("expected 1 call, got %d", len(calls))
		}
		expected := testutils.SetActiveCall{Encoding: "json", LeagueKey: testutils.LeagueKey, TeamKey: testutils.TeamKey}
		if calls[0] != expected {
			t.Errorf("unexpected call: %+v", calls[0])
		}
	})

	t.Run("query fallback", func(t *testing.T) {
		c, server := newTestClient(t)
		server.SetSetActiveMode(testutils.SetActiveQueryOnly)

		if err := c.SetActiveContext(context.Background(), testutils.LeagueKey, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		calls := server.SetActiveCalls()
		if len(calls) != 2 {
			t.Fatalf("expected 2 calls, got %d", len(calls))
		}
		if calls[0].Encoding != "json" || calls[1].Encoding != "query" {
			t.Errorf("expected json then query, got %s then %s", calls[0].Encoding, calls[1].Encoding)
		}
	})

	t.Run("both encodings rejected", func(t *testing.T) {
		c, server := newTestClient(t)
		server.SetSetActiveMode(testutils.SetActiveRejectAll)

		err := c.SetActiveContext(context.Background(), testutils.LeagueKey, testutils.TeamKey)
		if err == nil {
			t.Fatal("expected an error, but got none")
		}
		if calls := server.SetActiveCalls(); len(calls) != 2 {
			t.Errorf("expected both encodings attempted, got %d calls", len(calls))
		}
	})
}

func TestFetchIsRepeatable(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	first, _, err := c.Matchups(ctx, testutils.LeagueKey, testutils.TeamKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := c.Matchups(ctx, testutils.LeagueKey, testutils.TeamKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("normalizing the same payload twice produced different results")
	}
}
