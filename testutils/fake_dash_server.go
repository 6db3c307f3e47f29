package testutils

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Well-known keys used throughout the embedded fixtures.
const (
	OwnerID    = "owner-9001"
	LeagueKey  = "nba.l.12345"
	TeamKey    = "nba.l.12345.t.4"
	OppTeamKey = "nba.l.12345.t.7"

	// Every fixture's meta.last_sync_at uses this instant. Tests pin a
	// mock clock near it to get deterministic freshness.
	SyncTime = "2024-11-05T12:00:00Z"
)

//go:embed dashdata
var dashdata embed.FS

// SetActiveMode controls which encodings the fake backend accepts for the
// set-active endpoint.
type SetActiveMode int

const (
	// Accept the JSON-body encoding on the first try.
	SetActiveAcceptJSON SetActiveMode = iota
	// Reject the JSON-body encoding with a 400, accept the query-string
	// fallback. Mirrors older backend builds.
	SetActiveQueryOnly
	// Reject both encodings.
	SetActiveRejectAll
)

// SetActiveCall records one set-active request the fake backend received.
type SetActiveCall struct {
	Encoding  string // "json" or "query"
	LeagueKey string
	TeamKey   string
}

// FakeDashServer is an httptest server speaking the dashboard backend's
// envelope contract from embedded fixtures. Behavior toggles are safe to
// flip between requests.
type FakeDashServer struct {
	s *httptest.Server

	mu            sync.Mutex
	unauthorized  bool
	emptyContext  bool
	failing       map[string]bool
	malformed     map[string]bool
	setActiveMode SetActiveMode
	setActive     []SetActiveCall
}

func NewFakeDashServer() *FakeDashServer {
	f := &FakeDashServer{
		failing:   make(map[string]bool),
		malformed: make(map[string]bool),
	}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/context", f.fixtureHandler("context", "context.json"))
		r.Get("/league-teams", f.fixtureHandler("league-teams", "league_teams.json"))
		r.Get("/matchups", f.fixtureHandler("matchups", "matchups.json"))
		r.Get("/standings", f.fixtureHandler("standings", "standings.json"))
		r.Get("/settings", f.fixtureHandler("settings", "settings.json"))
		r.Get("/roster", f.fixtureHandler("roster", "roster.json"))
		r.Get("/sync-status", f.fixtureHandler("sync-status", "sync_status.json"))
		r.Get("/league-managers", f.fixtureHandler("league-managers", "league_managers.json"))
		r.Get("/owner-profile", f.fixtureHandler("owner-profile", "owner_profile.json"))
		r.Post("/context/active", f.setActiveHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeDashServer) Close() {
	f.s.Close()
}

func (f *FakeDashServer) URL() string {
	return f.s.URL
}

// SetUnauthorized makes every endpoint answer 401.
func (f *FakeDashServer) SetUnauthorized(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unauthorized = v
}

// SetEmptyContext makes the context endpoint report an owner with zero
// leagues.
func (f *FakeDashServer) SetEmptyContext(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emptyContext = v
}

// FailEndpoint makes the named endpoint answer a declared-failure
// envelope (success false with an errors array).
func (f *FakeDashServer) FailEndpoint(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[name] = true
}

// BreakEndpoint makes the named endpoint answer a body that violates the
// envelope contract.
func (f *FakeDashServer) BreakEndpoint(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.malformed[name] = true
}

// ResetEndpoint clears failure and contract-violation toggles for the
// named endpoint.
func (f *FakeDashServer) ResetEndpoint(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failing, name)
	delete(f.malformed, name)
}

func (f *FakeDashServer) SetSetActiveMode(m SetActiveMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setActiveMode = m
}

// SetActiveCalls returns the set-active requests received so far, in
// order.
func (f *FakeDashServer) SetActiveCalls() []SetActiveCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SetActiveCall, len(f.setActive))
	copy(out, f.setActive)
	return out
}

func (f *FakeDashServer) fixtureHandler(name, file string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		unauthorized := f.unauthorized
		malformed := f.malformed[name]
		failing := f.failing[name]
		emptyContext := f.emptyContext
		f.mu.Unlock()

		if unauthorized {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if malformed {
			serveFixture(w, "invalid_envelope.json")
			return
		}
		if failing {
			serveFixture(w, "declared_failure.json")
			return
		}
		if name == "context" && emptyContext {
			serveFixture(w, "context_empty.json")
			return
		}

		// Scoped endpoints only know about the fixture league and team.
		if q := r.URL.Query().Get("league_key"); q != "" && q != LeagueKey {
			serveFixture(w, "null_data.json")
			return
		}
		if name == "roster" {
			if q := r.URL.Query().Get("team_key"); q != TeamKey {
				serveFixture(w, "null_data.json")
				return
			}
		}

		serveFixture(w, file)
	}
}

func (f *FakeDashServer) setActiveHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	unauthorized := f.unauthorized
	mode := f.setActiveMode
	f.mu.Unlock()

	if unauthorized {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	call := SetActiveCall{}
	if lk := r.URL.Query().Get("league_key"); lk != "" {
		call.Encoding = "query"
		call.LeagueKey = lk
		call.TeamKey = r.URL.Query().Get("team_key")
	} else {
		call.Encoding = "json"
		var body struct {
			LeagueKey string  `json:"league_key"`
			TeamKey   *string `json:"team_key"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		call.LeagueKey = body.LeagueKey
		if body.TeamKey != nil {
			call.TeamKey = *body.TeamKey
		}
	}

	f.mu.Lock()
	f.setActive = append(f.setActive, call)
	f.mu.Unlock()

	switch {
	case mode == SetActiveRejectAll:
		w.WriteHeader(http.StatusBadRequest)
	case mode == SetActiveQueryOnly && call.Encoding == "json":
		w.WriteHeader(http.StatusBadRequest)
	case call.LeagueKey == "":
		w.WriteHeader(http.StatusBadRequest)
	default:
		serveFixture(w, "ok.json")
	}
}

func serveFixture(w http.ResponseWriter, name string) {
	b, err := dashdata.ReadFile(fmt.Sprintf("dashdata/%s", name))
	if err != nil {
		log.Printf("error reading dashdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
