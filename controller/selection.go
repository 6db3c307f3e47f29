package controller

import (
	"context"
	"errors"
	"log"

	"github.com/brndconsulting/nba-ui/db"
	"github.com/brndconsulting/nba-ui/model"
)

// The active-selection resolver. State machine:
//
//	synced -> local   set-active applied locally, backend write pending/failed
//	local  -> synced  backend write confirmed, authoritative context refetched
//	*      -> error   only when the initial context fetch itself fails
//
// Set-active failures never reach the error state; they degrade to local so
// a broken persistence endpoint cannot take the dashboard down.

// seedSelection runs on every successful context fetch. The first one
// initializes the resolver: a stored shadow wins over the server-declared
// active keys, because the shadow is what the user last chose here.
func (c *controller) seedSelection(ctx context.Context, data *model.ContextData, meta *model.Meta) {
	c.selMu.Lock()
	defer c.selMu.Unlock()

	c.ownerID = meta.OwnerID
	if c.initialized {
		return
	}
	c.initialized = true
	c.persistence = model.PersistenceSynced

	if stored, err := c.store.GetSelection(ctx, meta.OwnerID); err == nil {
		c.selection = *stored
		if stored.LeagueKey != data.ActiveLeagueKey || stored.TeamKey != data.ActiveTeamKey {
			c.persistence = model.PersistenceLocal
		}
		return
	} else if !errors.Is(err, db.ErrSelectionNotFound) {
		log.Printf("error reading stored selection: %v", err)
	}

	c.selection = model.ActiveSelection{
		LeagueKey: data.ActiveLeagueKey,
		TeamKey:   data.ActiveTeamKey,
	}
}

func (c *controller) noteContextError() {
	c.selMu.Lock()
	defer c.selMu.Unlock()

	if !c.initialized {
		c.persistence = model.PersistenceError
	}
}

func (c *controller) ActiveSelection() model.ActiveSelection {
	c.selMu.Lock()
	defer c.selMu.Unlock()
	return c.selection
}

func (c *controller) PersistenceState() model.PersistenceState {
	c.selMu.Lock()
	defer c.selMu.Unlock()
	return c.persistence
}

func (c *controller) SetActiveContext(ctx context.Context, leagueKey, teamKey string) bool {
	// Optimistic update first: the UI follows the local shadow from this
	// point on no matter what the backend says.
	c.selMu.Lock()
	c.selection = model.ActiveSelection{LeagueKey: leagueKey, TeamKey: teamKey}
	c.persistence = model.PersistenceLocal
	ownerID := c.ownerID
	c.selMu.Unlock()

	if err := c.store.SaveSelection(ctx, ownerID, model.ActiveSelection{LeagueKey: leagueKey, TeamKey: teamKey}); err != nil {
		log.Printf("error saving selection shadow: %v", err)
	}

	if err := c.client.SetActiveContext(ctx, leagueKey, teamKey); err != nil {
		// Not rolled back and not surfaced as an error: local usability
		// outranks backend persistence.
		log.Printf("backend did not persist active context, keeping local selection: %v", err)
		return true
	}

	c.selMu.Lock()
	c.persistence = model.PersistenceSynced
	c.selMu.Unlock()

	// Refetch so the cached context reflects the backend's acknowledged
	// view.
	c.LoadContext(ctx)
	return true
}
