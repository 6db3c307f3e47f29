package dashapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brndconsulting/nba-ui/model"
)

// Client talks to the dashboard backend. Every endpoint returns the
// Envelope<T> contract; the client validates it and hands back the typed
// payload plus the response meta. All endpoints are scoped to the
// authenticated owner server-side, so no owner id is ever sent.
type Client interface {
	Context(ctx context.Context) (*model.ContextData, *model.Meta, error)
	LeagueTeams(ctx context.Context, leagueKey string) (*model.LeagueTeamsData, *model.Meta, error)
	Matchups(ctx context.Context, leagueKey, teamKey string) (*model.MatchupsData, *model.Meta, error)
	Standings(ctx context.Context, leagueKey string) (*model.StandingsData, *model.Meta, error)
	Settings(ctx context.Context, leagueKey string) (*model.SettingsData, *model.Meta, error)
	Roster(ctx context.Context, teamKey string) (*model.RosterData, *model.Meta, error)
	SyncStatus(ctx context.Context, leagueKey string) (*model.SyncStatusData, *model.Meta, error)
	LeagueManagers(ctx context.Context, leagueKey string) (*model.LeagueManagersData, *model.Meta, error)
	OwnerProfile(ctx context.Context) (*model.OwnerProfileData, *model.Meta, error)

	// SetActiveContext persists the active selection. The JSON-body
	// encoding is attempted first, then the query-string encoding; the
	// returned error is nil if either attempt succeeded.
	SetActiveContext(ctx context.Context, leagueKey, teamKey string) error
}

type client struct {
	url        string
	httpClient *http.Client
}

// New creates a Client against the given base URL. The base URL is fixed
// for the life of the client. Pass nil to use a default http.Client with a
// one minute timeout; pass an oauth2-wrapped client to attach credentials.
func New(baseURL string, httpClient *http.Client) (Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend base URL must be provided")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 1 * time.Minute}
	}
	return &client{url: baseURL, httpClient: httpClient}, nil
}

func (c *client) Context(ctx context.Context) (*model.ContextData, *model.Meta, error) {
	return getPayload[model.ContextData](ctx, c, "context", nil)
}

func (c *client) LeagueTeams(ctx context.Context, leagueKey string) (*model.LeagueTeamsData, *model.Meta, error) {
	return getPayload[model.LeagueTeamsData](ctx, c, "league-teams", url.Values{"league_key": {leagueKey}})
}

func (c *client) Matchups(ctx context.Context, leagueKey, teamKey string) (*model.MatchupsData, *model.Meta, error) {
	q := url.Values{"league_key": {leagueKey}}
	if teamKey != "" {
		q.Set("team_key", teamKey)
	}

	env, err := c.get(ctx, "matchups", q)
	if err != nil {
		return nil, nil, err
	}
	if !env.HasData() {
		return nil, env.Meta, nil
	}
	return normalizeMatchups(env.Data), env.Meta, nil
}

func (c *client) Standings(ctx context.Context, leagueKey string) (*model.StandingsData, *model.Meta, error) {
	return getPayload[model.StandingsData](ctx, c, "standings", url.Values{"league_key": {leagueKey}})
}

func (c *client) Settings(ctx context.Context, leagueKey string) (*model.SettingsData, *model.Meta, error) {
	return getPayload[model.SettingsData](ctx, c, "settings", url.Values{"league_key": {leagueKey}})
}

func (c *client) Roster(ctx context.Context, teamKey string) (*model.RosterData, *model.Meta, error) {
	return getPayload[model.RosterData](ctx, c, "roster", url.Values{"team_key": {teamKey}})
}

func (c *client) SyncStatus(ctx context.Context, leagueKey string) (*model.SyncStatusData, *model.Meta, error) {
	var q url.Values
	if leagueKey != "" {
		q = url.Values{"league_key": {leagueKey}}
	}
	return getPayload[model.SyncStatusData](ctx, c, "sync-status", q)
}

func (c *client) LeagueManagers(ctx context.Context, leagueKey string) (*model.LeagueManagersData, *model.Meta, error) {
	return getPayload[model.LeagueManagersData](ctx, c, "league-managers", url.Values{"league_key": {leagueKey}})
}

func (c *client) OwnerProfile(ctx context.Context) (*model.OwnerProfileData, *model.Meta, error) {
	return getPayload[model.OwnerProfileData](ctx, c, "owner-profile", nil)
}

func (c *client) SetActiveContext(ctx context.Context, leagueKey, teamKey string) error {
	body := map[string]any{"league_key": leagueKey}
	if teamKey != "" {
		body["team_key"] = teamKey
	} else {
		body["team_key"] = nil
	}

	// Preferred encoding: JSON body.
	jsonErr := c.post(ctx, "context/active", nil, body)
	if jsonErr == nil {
		return nil
	}
	if errors.Is(jsonErr, ErrUnauthorized) {
		return jsonErr
	}

	// Fallback encoding: query-string parameters, empty body. Some backend
	// versions only accept this form.
	q := url.Values{"league_key": {leagueKey}}
	if teamKey != "" {
		q.Set("team_key", teamKey)
	}
	queryErr := c.post(ctx, "context/active", q, nil)
	if queryErr == nil {
		return nil
	}
	if errors.Is(queryErr, ErrUnauthorized) {
		return queryErr
	}

	return fmt.Errorf("set active context failed for both encodings: %w (json body attempt: %v)", queryErr, jsonErr)
}

// getPayload runs one GET cycle: request, status check, envelope
// validation, typed payload decode. A valid envelope with no payload
// returns a nil payload and the meta.
func getPayload[T any](ctx context.Context, c *client, endpoint string, query url.Values) (*T, *model.Meta, error) {
	env, err := c.get(ctx, endpoint, query)
	if err != nil {
		return nil, nil, err
	}
	if !env.HasData() {
		return nil, env.Meta, nil
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, env.Meta, &ValidationError{Field: "/data", Message: err.Error()}
	}
	return &data, env.Meta, nil
}

func (c *client) get(ctx context.Context, endpoint string, query url.Values) (*model.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint, query), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating backend http request: %w", err)
	}
	return c.do(req)
}

func (c *client) post(ctx context.Context, endpoint string, query url.Values, body any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		reader = strings.NewReader(string(b))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint, query), reader)
	if err != nil {
		return fmt.Errorf("error creating backend http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := c.do(req); err != nil {
		return err
	}
	return nil
}

// do executes one request and enforces the envelope contract on the
// response. 401 is the distinguished session-expiry case.
func (c *client) do(req *http.Request) (*model.Envelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending backend http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading backend response: %w", err)
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	if !env.Success {
		return nil, &DeclaredError{Errors: env.Errors}
	}
	return env, nil
}

func (c *client) endpointURL(endpoint string, query url.Values) string {
	u := fmt.Sprintf("%s/v1/%s", c.url, endpoint)
	if len(query) > 0 {
		u = fmt.Sprintf("%s?%s", u, query.Encode())
	}
	return u
}
