package db

import (
	"context"
	"errors"

	"github.com/brndconsulting/nba-ui/model"
)

var ErrSelectionNotFound = errors.New("selection not found")

// Store persists the local shadow of the active selection per owner. The
// backend's own persistence endpoint is unreliable across versions, so this
// shadow is what keeps the dashboard usable between sessions.
type Store interface {
	// GetSelection returns the saved selection for an owner, or
	// ErrSelectionNotFound.
	GetSelection(ctx context.Context, ownerID string) (*model.ActiveSelection, error)
	// SaveSelection inserts or replaces the selection for an owner.
	SaveSelection(ctx context.Context, ownerID string, sel model.ActiveSelection) error

	Close()
}
