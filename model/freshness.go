package model

import (
	"time"
)

// Freshness classifies how recently a data domain was synchronized.
type Freshness string

const (
	FreshnessFresh   Freshness = "fresh"
	FreshnessStale   Freshness = "stale"
	FreshnessMissing Freshness = "missing"
)

// FreshFor is how long after a sync a domain still counts as fresh. This is
// one uniform policy constant for every domain, matchups included.
const FreshFor = 5 * time.Minute

// MissingSentinel is the literal the backend sends for a domain that has
// never synced.
const MissingSentinel = "missing"

// Layouts the backend has been seen to use for sync timestamps.
var syncTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSyncTime parses a sync timestamp. ok is false for the missing
// sentinel, the empty string, and anything unparseable.
func ParseSyncTime(lastSyncAt string) (time.Time, bool) {
	if lastSyncAt == "" || lastSyncAt == MissingSentinel {
		return time.Time{}, false
	}
	for _, layout := range syncTimeLayouts {
		if t, err := time.Parse(layout, lastSyncAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ClassifyAt derives a freshness label from a last-sync timestamp.
// elapsed < FreshFor is fresh; elapsed >= FreshFor is stale; a missing or
// unparseable timestamp is missing. Pure given now.
func ClassifyAt(lastSyncAt string, now time.Time) Freshness {
	t, ok := ParseSyncTime(lastSyncAt)
	if !ok {
		return FreshnessMissing
	}
	if now.Sub(t) < FreshFor {
		return FreshnessFresh
	}
	return FreshnessStale
}
