package testutils

import (
	"log"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/brndconsulting/nba-ui/dashapi"
)

// TestBackend bundles a fake dashboard backend with a mock clock pinned
// two minutes after the fixtures' sync time, so fixture data classifies as
// fresh until a test advances the clock.
type TestBackend struct {
	Clock  *clock.Mock
	Client dashapi.Client
	Server *FakeDashServer
}

func NewTestBackend() *TestBackend {
	server := NewFakeDashServer()

	client, err := dashapi.New(server.URL(), nil)
	if err != nil {
		log.Fatalf("error creating client for fake backend: %v", err)
	}

	syncTime, err := time.Parse(time.RFC3339, SyncTime)
	if err != nil {
		log.Fatalf("error parsing fixture sync time: %v", err)
	}

	mock := clock.NewMock()
	mock.Set(syncTime.Add(2 * time.Minute))

	return &TestBackend{
		Clock:  mock,
		Client: client,
		Server: server,
	}
}

func (b *TestBackend) Close() {
	b.Server.Close()
}
