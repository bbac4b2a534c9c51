package config

import "github.com/caarlos0/env"

// parseEnv overlays cfg with the CODES_* environment variables that are set.
// Durations use Go syntax ("3s", "1m"). Panics on malformed values.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
