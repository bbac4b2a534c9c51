// Package config loads runtime configuration for the codes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c/-config or $CODES_CONFIG.
//  3. CODES_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string          base URL of the codes API
//	-t string          bearer token
//	-i int             online status check interval (seconds)
//	-timeout int       request timeout (seconds)
//	-db string         local preferences database
//	-log-level string  log level
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "auth_token": "",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "db_path": "codes.db",
//	  "min_code_length": 8,
//	  "max_code_length": 11,
//	  "success_ttl": "5s",
//	  "log_level": "info"
//	}
package config
