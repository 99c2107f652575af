package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cardwise/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://localhost:5432/cardwise")

	cfg, err := config.Load()

	rq.NoError(err)
	rq.Equal("cardwise", cfg.App.Name)
	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal(1500, cfg.Places.DefaultRadiusMeters)
	rq.Equal(5*time.Minute, cfg.Catalog.ReloadInterval)
	rq.Empty(cfg.Catalog.Path)
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://localhost:5432/cardwise")
	t.Setenv("HTTP_LISTEN_ADDRESS", ":3000")
	t.Setenv("PLACES_API_KEY", "sk-test")
	t.Setenv("CATALOG_PATH", "/etc/cardwise/catalog.json")
	t.Setenv("CATALOG_RELOAD_INTERVAL", "30s")

	cfg, err := config.Load()

	rq.NoError(err)
	rq.Equal(":3000", cfg.HTTP.ListenAddress)
	rq.Equal("sk-test", cfg.Places.APIKey)
	rq.Equal("/etc/cardwise/catalog.json", cfg.Catalog.Path)
	rq.Equal(30*time.Second, cfg.Catalog.ReloadInterval)
}
