package config

import "time"

type Places struct {
	BaseURL             string        `env:"PLACES_BASE_URL" envDefault:"https://places.example.com/v1"`
	APIKey              string        `env:"PLACES_API_KEY"`
	Timeout             time.Duration `env:"PLACES_TIMEOUT" envDefault:"5s"`
	CacheTTL            time.Duration `env:"PLACES_CACHE_TTL" envDefault:"5m"`
	DefaultRadiusMeters int           `env:"PLACES_DEFAULT_RADIUS_METERS" envDefault:"1500"`
}
