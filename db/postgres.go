package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brndconsulting/nba-ui/model"
)

// New connects to postgres and returns a Store backed by it.
func New(ctx context.Context, connString string, clock clock.Clock) (Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresStore{pool: pool, clock: clock}, nil
}

type postgresStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresStore) GetSelection(ctx context.Context, ownerID string) (*model.ActiveSelection, error) {
	const query = `SELECT league_key, team_key FROM selections WHERE owner_id=@owner_id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"owner_id": ownerID})

	var sel model.ActiveSelection
	if err := row.Scan(&sel.LeagueKey, &sel.TeamKey); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSelectionNotFound
		}
		return nil, err
	}
	return &sel, nil
}

func (db *postgresStore) SaveSelection(ctx context.Context, ownerID string, sel model.ActiveSelection) error {
	const query = `INSERT INTO selections(owner_id, league_key, team_key, updated)
					VALUES (@owner_id, @league_key, @team_key, @updated)
					ON CONFLICT (owner_id) DO UPDATE
						SET league_key=@league_key, team_key=@team_key, updated=@updated`

	args := pgx.NamedArgs{
		"owner_id":   ownerID,
		"league_key": sel.LeagueKey,
		"team_key":   sel.TeamKey,
		"updated":    db.clock.Now().UTC(),
	}
	_, err := db.pool.Exec(ctx, query, args)
	return err
}

func (db *postgresStore) Close() {
	db.pool.Close()
}
