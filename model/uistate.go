package model

import "time"

// DataState is the discriminated state a fetch cycle lands in. Loading is
// the initial state; the rest are terminal for that cycle.
type DataState string

const (
	StateLoading DataState = "loading"
	StateReady   DataState = "ready"
	StateEmpty   DataState = "empty"
	StateStale   DataState = "stale"
	StateError   DataState = "error"
)

// UIState is what presentation code consumes for one data domain. Exactly
// the classification, the payload when there is one, and enough error
// detail for diagnostics; no exceptions ever cross this boundary.
type UIState[T any] struct {
	State        DataState
	Data         *T     // non-nil only for ready and stale
	ErrMessage   string // non-empty only for error
	ErrCode      string
	Unauthorized bool // distinguished 401 case; drives the reconnect affordance
	LastSyncAt   time.Time
	FromCache    bool
}

// Predicates for template code, which cannot compare typed strings
// against literals.

func (s UIState[T]) IsLoading() bool { return s.State == StateLoading }
func (s UIState[T]) IsReady() bool   { return s.State == StateReady }
func (s UIState[T]) IsEmpty() bool   { return s.State == StateEmpty }
func (s UIState[T]) IsStale() bool   { return s.State == StateStale }
func (s UIState[T]) IsError() bool   { return s.State == StateError }

// HasData reports whether there is anything to render at all; stale data
// still renders, just with a warning.
func (s UIState[T]) HasData() bool { return s.Data != nil }

// Loading is the state every fetch cycle starts from.
func Loading[T any]() UIState[T] {
	return UIState[T]{State: StateLoading}
}

// ErrorState builds an error state.
func ErrorState[T any](code, message string) UIState[T] {
	return UIState[T]{State: StateError, ErrCode: code, ErrMessage: message}
}
