package model

// The fixed set of tracked data domains. The backend may report more; extra
// domains are kept in the payload but only these count toward the overall
// health aggregation.
var SyncDomains = []string{
	"context_leagues",
	"league_teams",
	"settings",
	"standings",
	"matchups",
	"roster",
	"team_stats",
	"player_pool",
	"owner_profile",
	"league_managers",
	"league_strengths",
	"schedule",
}

// SyncDomainDisplayNames maps domain keys to what the UI shows.
var SyncDomainDisplayNames = map[string]string{
	"context_leagues":  "Context & Leagues",
	"league_teams":     "League Teams",
	"settings":         "Settings",
	"standings":        "Standings",
	"matchups":         "Matchups",
	"roster":           "Roster",
	"team_stats":       "Team Stats",
	"player_pool":      "Player Pool",
	"owner_profile":    "Owner Profile",
	"league_managers":  "League Managers",
	"league_strengths": "League Strengths",
	"schedule":         "Schedule",
}

// SyncDomainStatus is the backend-reported freshness of one domain.
type SyncDomainStatus struct {
	Status      Freshness `json:"status"`
	LastSyncAt  string    `json:"last_sync_at"`
	Message     string    `json:"message"`
	DisplayName string    `json:"display_name,omitempty"`
	Description string    `json:"description,omitempty"`
}

// SyncStatusData is the payload of /v1/sync-status.
type SyncStatusData struct {
	SyncStatus    map[string]SyncDomainStatus `json:"sync_status"`
	OverallStatus OverallFreshness            `json:"overall_status"`
	LeagueKey     string                      `json:"league_key,omitempty"`
	OwnerID       string                      `json:"owner_id"`
	DomainsCount  int                         `json:"domains_count,omitempty"`
}

func (d *SyncStatusData) Empty() bool {
	return len(d.SyncStatus) == 0
}

// Domain returns the status entry for a tracked domain. A domain the
// backend never mentioned reports as missing rather than being absent.
func (d *SyncStatusData) Domain(key string) SyncDomainStatus {
	if s, ok := d.SyncStatus[key]; ok {
		return s
	}
	return SyncDomainStatus{
		Status:      FreshnessMissing,
		Message:     "no sync recorded",
		DisplayName: SyncDomainDisplayNames[key],
	}
}

// OverallFreshness is the header-level aggregation across all tracked
// domains.
type OverallFreshness string

const (
	OverallFresh      OverallFreshness = "fresh"
	OverallStale      OverallFreshness = "stale"
	OverallIncomplete OverallFreshness = "incomplete"
)

// Overall aggregates the tracked domain set: any missing domain makes the
// whole picture incomplete, otherwise any stale domain makes it stale.
func Overall(statuses map[string]SyncDomainStatus) OverallFreshness {
	overall := OverallFresh
	for _, key := range SyncDomains {
		s, ok := statuses[key]
		if !ok || s.Status == FreshnessMissing {
			return OverallIncomplete
		}
		if s.Status == FreshnessStale {
			overall = OverallStale
		}
	}
	return overall
}
