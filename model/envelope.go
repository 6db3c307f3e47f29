package model

import (
	"encoding/json"
)

// Envelope is the wrapper every /v1/* backend response arrives in. The
// backend is not perfectly consistent about which fields it includes, so the
// decoding here is deliberately tolerant: a missing success flag means true,
// a missing errors list means no errors, and unknown extra fields are simply
// ignored rather than rejected.
type Envelope struct {
	Success      bool
	Meta         *Meta
	Capabilities map[string]bool
	Data         json.RawMessage
	Errors       []ErrorDetail
}

// HasData reports whether the envelope carries a payload at all. A literal
// JSON null counts as no payload.
func (e *Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

func (e *Envelope) UnmarshalJSON(b []byte) error {
	var raw struct {
		Success      *bool           `json:"success"`
		Meta         *Meta           `json:"meta"`
		Capabilities map[string]bool `json:"capabilities"`
		Data         json.RawMessage `json:"data"`
		Errors       []ErrorDetail   `json:"errors"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	e.Success = raw.Success == nil || *raw.Success
	e.Meta = raw.Meta
	e.Capabilities = raw.Capabilities
	e.Data = raw.Data
	e.Errors = raw.Errors
	if e.Errors == nil {
		e.Errors = []ErrorDetail{}
	}
	return nil
}

// ErrorDetail is one backend-declared error. Code is a stable machine
// identifier, Message is what gets surfaced to the user.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Meta is present on every response.
type Meta struct {
	OwnerID      string    `json:"owner_id"`
	SnapshotDate string    `json:"snapshot_date"`
	FromCache    bool      `json:"from_cache"`
	LastSyncAt   SyncStamp `json:"last_sync_at"`
}

// SyncStamp tolerates both shapes the backend has been observed to emit for
// meta.last_sync_at: a single timestamp string, or a per-domain record of
// timestamp strings.
type SyncStamp struct {
	Time     string
	ByDomain map[string]string
}

func (s *SyncStamp) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &s.Time)
	}
	return json.Unmarshal(b, &s.ByDomain)
}

func (s SyncStamp) MarshalJSON() ([]byte, error) {
	if s.ByDomain != nil {
		return json.Marshal(s.ByDomain)
	}
	return json.Marshal(s.Time)
}

// For returns the stamp to use when classifying the given domain. The
// per-domain record wins when it has an entry, otherwise the single
// timestamp applies to every domain.
func (s SyncStamp) For(domain string) string {
	if t, ok := s.ByDomain[domain]; ok {
		return t
	}
	return s.Time
}
