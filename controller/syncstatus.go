package controller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/brndconsulting/nba-ui/model"
)

func (c *controller) SyncStatus(ctx context.Context, leagueKey string) model.UIState[model.SyncStatusData] {
	return dispatch(ctx, &c.syncCell, leagueKey, c.clock, "sync_status",
		func(ctx context.Context) (*model.SyncStatusData, *model.Meta, error) {
			data, meta, err := c.client.SyncStatus(ctx, leagueKey)
			if err == nil && data != nil {
				// Recompute the aggregation locally: some backend versions
				// omit overall_status or compute it over a different
				// domain set.
				data.OverallStatus = model.Overall(data.SyncStatus)
			}
			return data, meta, err
		},
		func(d *model.SyncStatusData) bool { return d.Empty() })
}

func (c *controller) LatestSyncStatus() model.UIState[model.SyncStatusData] {
	return c.syncCell.current()
}

// RunPeriodicSyncUpdates keeps the sync-status cell warm on a fixed
// interval until shutdown is closed. The job runs in singleton mode so a
// slow fetch is never stacked under a new tick.
func (c *controller) RunPeriodicSyncUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("error creating sync refresh scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DurationJob(frequency),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			sel := c.ActiveSelection()
			state := c.SyncStatus(ctx, sel.LeagueKey)
			if state.State == model.StateError {
				log.Printf("periodic sync-status refresh failed: %s", state.ErrMessage)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("error creating sync refresh job: %v", err)
		return
	}

	s.Start()

	<-shutdown
	if err := s.Shutdown(); err != nil {
		log.Printf("error shutting down sync refresh scheduler: %v", err)
	}
}
