package controller

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/itbasis/go-clock"

	"github.com/brndconsulting/nba-ui/dashapi"
	"github.com/brndconsulting/nba-ui/model"
)

// A cell is the single "latest accepted state" slot for one data domain.
// Every fetch takes a generation token when it starts; a response whose
// token is no longer current is discarded, which gives the
// last-request-wins guarantee when fetches interleave.
type cell[T any] struct {
	mu    sync.Mutex
	key   string
	gen   uint64
	state model.UIState[T]
}

// begin registers a new fetch for key, superseding anything in flight. A
// key change (different league/team) resets the visible state to loading.
func (c *cell[T]) begin(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key != key || c.state.State == "" {
		c.key = key
		c.state = model.Loading[T]()
	}
	c.gen++
	return c.gen
}

// accept installs a finished state unless the fetch was superseded.
func (c *cell[T]) accept(gen uint64, key string, s model.UIState[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || key != c.key {
		return false
	}
	c.state = s
	return true
}

func (c *cell[T]) current() model.UIState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.State == "" {
		return model.Loading[T]()
	}
	return c.state
}

// dispatch runs one fetch cycle end to end: loading, fetch, error
// taxonomy, empty detection, freshness classification. The computed state
// is returned to the caller either way; the cell only adopts it if no
// newer fetch started in the meantime.
func dispatch[T any](ctx context.Context, c *cell[T], key string, clk clock.Clock, domain string,
	fetch func(context.Context) (*T, *model.Meta, error),
	isEmpty func(*T) bool) model.UIState[T] {

	gen := c.begin(key)
	state := runFetch(ctx, clk, domain, fetch, isEmpty)
	c.accept(gen, key, state)
	return state
}

func runFetch[T any](ctx context.Context, clk clock.Clock, domain string,
	fetch func(context.Context) (*T, *model.Meta, error),
	isEmpty func(*T) bool) model.UIState[T] {

	data, meta, err := fetch(ctx)
	if err != nil {
		return stateFromError[T](domain, err)
	}

	var state model.UIState[T]
	if data == nil || (isEmpty != nil && isEmpty(data)) {
		state = model.UIState[T]{State: model.StateEmpty}
	} else {
		state = model.UIState[T]{State: model.StateReady, Data: data}
	}

	if meta != nil {
		state.FromCache = meta.FromCache
		stamp := meta.LastSyncAt.For(domain)
		if t, ok := model.ParseSyncTime(stamp); ok {
			state.LastSyncAt = t
		}
		if state.State == model.StateReady &&
			model.ClassifyAt(stamp, clk.Now()) == model.FreshnessStale {
			state.State = model.StateStale
		}
	}
	return state
}

// stateFromError maps the client error taxonomy onto the error state.
// Contract violations are logged distinctly from transport failures so the
// two are separable in logs.
func stateFromError[T any](domain string, err error) model.UIState[T] {
	if errors.Is(err, dashapi.ErrUnauthorized) {
		state := model.ErrorState[T]("UNAUTHORIZED", "session expired, reconnect required")
		state.Unauthorized = true
		return state
	}

	var verr *dashapi.ValidationError
	if errors.As(err, &verr) {
		log.Printf("backend contract violation on %s: %v", domain, verr)
		return model.ErrorState[T]("CONTRACT_VIOLATION", verr.Error())
	}

	var derr *dashapi.DeclaredError
	if errors.As(err, &derr) {
		// Surface the backend's first message verbatim; keep the code for
		// diagnostics.
		return model.ErrorState[T](derr.Code(), derr.Error())
	}

	var serr *dashapi.StatusError
	if errors.As(err, &serr) {
		log.Printf("backend transport error on %s: %v", domain, serr)
		return model.ErrorState[T]("TRANSPORT_ERROR", serr.Error())
	}

	log.Printf("backend request failed on %s: %v", domain, err)
	return model.ErrorState[T]("TRANSPORT_ERROR", err.Error())
}
