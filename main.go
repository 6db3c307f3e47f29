package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"

	"github.com/brndconsulting/nba-ui/config"
	"github.com/brndconsulting/nba-ui/controller"
	"github.com/brndconsulting/nba-ui/dashapi"
	"github.com/brndconsulting/nba-ui/db"
	"github.com/brndconsulting/nba-ui/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("error reading config: %v", err)
	}

	clock := clock.New()

	// Without a database the selection shadow lives in memory and resets
	// on restart, which is fine for local development.
	var store db.Store
	if cfg.PostgresConnStr != "" {
		store, err = db.New(context.Background(), cfg.PostgresConnStr, clock)
		if err != nil {
			log.Fatalf("cannot connect to DB: %v", err)
		}
	} else {
		log.Printf("POSTGRES_CONN_STR not set, using in-memory selection store")
		store = db.NewMemoryStore()
	}
	defer store.Close()

	var httpClient *http.Client
	if cfg.APIToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken})
		httpClient = oauth2.NewClient(context.Background(), src)
	}

	client, err := dashapi.New(cfg.APIBaseURL, httpClient)
	if err != nil {
		log.Fatalf("error creating backend client: %v", err)
	}

	ctrl, err := controller.New(clock, client, store)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(cfg.Port, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Keep the sync-status panel warm in the background.
	wg.Add(1)
	go ctrl.RunPeriodicSyncUpdates(cfg.SyncRefreshInterval, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
