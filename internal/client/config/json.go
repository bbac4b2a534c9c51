package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/codetracker/internal/flagx"
	"github.com/dmitrijs2005/codetracker/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Intervals use
// timex.Duration so they may be strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	ServerURL           string         `json:"server_url"`
	AuthToken           string         `json:"auth_token"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DBPath              string         `json:"db_path"`
	MinCodeLength       int            `json:"min_code_length"`
	MaxCodeLength       int            `json:"max_code_length"`
	SuccessTTL          timex.Duration `json:"success_ttl"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with values from the file named by -c/-config
// (or $CODES_CONFIG). Absent or zero fields keep their current value.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.AuthToken != "" {
		cfg.AuthToken = jc.AuthToken
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.MinCodeLength > 0 {
		cfg.MinCodeLength = jc.MinCodeLength
	}
	if jc.MaxCodeLength > 0 {
		cfg.MaxCodeLength = jc.MaxCodeLength
	}
	if jc.SuccessTTL.Duration > 0 {
		cfg.SuccessTTL = jc.SuccessTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
