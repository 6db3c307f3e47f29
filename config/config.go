package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read once at startup and injected into constructors; nothing
// mutates it afterwards.
type Config struct {
	// Base URL of the dashboard backend, e.g. https://api.example.com/api
	APIBaseURL string `envconfig:"DASH_API_URL" required:"true"`
	// Optional bearer token attached to every backend request.
	APIToken string `envconfig:"DASH_API_TOKEN"`

	Port int `envconfig:"PORT" default:"3000"`

	// When empty the selection shadow is kept in memory only.
	PostgresConnStr string `envconfig:"POSTGRES_CONN_STR"`

	// How often the sync-status panel refreshes in the background.
	SyncRefreshInterval time.Duration `envconfig:"SYNC_REFRESH_INTERVAL" default:"60s"`
}

func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
