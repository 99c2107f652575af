package config

import "time"

type Catalog struct {
	// Path to a JSON catalog file; empty means the built-in catalog.
	Path           string        `env:"CATALOG_PATH"`
	ReloadInterval time.Duration `env:"CATALOG_RELOAD_INTERVAL" envDefault:"5m"`
}
