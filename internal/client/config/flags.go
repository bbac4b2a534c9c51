package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/codetracker/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-i", "-timeout", "-db", "-log-level"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string          base URL of the codes API
//	-t string          bearer token
//	-i int             online check interval in seconds
//	-timeout int       per-request timeout in seconds
//	-db string         path to the local preferences database
//	-log-level string  debug, info, warn or error
//
// Only the flags above are read from os.Args (see flagx.FilterArgs).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the codes API")
	fs.StringVar(&cfg.AuthToken, "t", cfg.AuthToken, "bearer token for the codes API")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	requestTimeout := fs.Int("timeout", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the local preferences database")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Intervals are only overridden when given, so sub-second values from
	// JSON or the environment survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "timeout":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
