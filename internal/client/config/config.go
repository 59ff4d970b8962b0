package config

import "time"

// Config holds runtime settings for the Labersaler client.
//
// Fields:
//   - BaseURL: root URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout of the API client.
//   - DatabasePath: location of the local SQLite file holding the session.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "labersaler.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
