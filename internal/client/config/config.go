package config

import (
	"time"

	"github.com/dmitrijs2005/codetracker/internal/codes"
)

// Config holds runtime settings for the codes CLI.
//
// Units: RequestTimeout, OnlineCheckInterval and SuccessTTL are
// time.Duration values; flags take them in whole seconds.
type Config struct {
	ServerURL           string        `env:"CODES_SERVER_URL"`
	AuthToken           string        `env:"CODES_TOKEN"`
	RequestTimeout      time.Duration `env:"CODES_REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"CODES_ONLINE_CHECK_INTERVAL"`
	DBPath              string        `env:"CODES_DB_PATH"`
	MinCodeLength       int           `env:"CODES_MIN_LENGTH"`
	MaxCodeLength       int           `env:"CODES_MAX_LENGTH"`
	SuccessTTL          time.Duration `env:"CODES_SUCCESS_TTL"`
	LogLevel            string        `env:"CODES_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.AuthToken = ""
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.DBPath = "codes.db"
	c.MinCodeLength = codes.DefaultMinLength
	c.MaxCodeLength = codes.DefaultMaxLength
	c.SuccessTTL = 5 * time.Second
	c.LogLevel = "info"
}

// Normalizer builds the code normalizer for the configured length bounds.
func (c *Config) Normalizer() codes.Normalizer {
	return codes.Normalizer{MinLen: c.MinCodeLength, MaxLen: c.MaxCodeLength, Truncate: true}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
