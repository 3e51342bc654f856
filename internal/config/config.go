package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	DBDSN    string `env:"DB_DSN" envDefault:"auction.db"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ExpirySweepSeconds is how often the house closes listings past
	// their end time.
	ExpirySweepSeconds int `env:"EXPIRY_SWEEP_SECONDS" envDefault:"60"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
