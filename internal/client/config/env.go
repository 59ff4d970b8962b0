package config

import (
	"os"
	"time"
)

// Environment variable names. A .env file in the working directory is loaded
// by main before LoadConfig runs.
const (
	EnvBaseURL        = "LABERSALER_BASE_URL"
	EnvRequestTimeout = "LABERSALER_REQUEST_TIMEOUT"
	EnvDatabasePath   = "LABERSALER_DB_PATH"
)

// parseEnv overlays Config with values from the environment. The timeout is
// a Go duration string ("10s", "1m"); malformed values are ignored so a bad
// .env entry cannot take the client down.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvBaseURL); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if v, ok := os.LookupEnv(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
}
