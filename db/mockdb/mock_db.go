package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/brndconsulting/nba-ui/model"
)

type Store struct {
	mock.Mock
}

func (db *Store) GetSelection(ctx context.Context, ownerID string) (*model.ActiveSelection, error) {
	args := db.Called(ctx, ownerID)

	var sel *model.ActiveSelection
	if args.Get(0) != nil {
		sel = args.Get(0).(*model.ActiveSelection)
	}
	return sel, args.Error(1)
}

func (db *Store) SaveSelection(ctx context.Context, ownerID string, sel model.ActiveSelection) error {
	args := db.Called(ctx, ownerID, sel)
	return args.Error(0)
}

func (db *Store) Close() {}
