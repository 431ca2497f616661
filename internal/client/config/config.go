// Package config holds runtime settings for the Courtside dashboard client.
package config

import "time"

// Config fields:
//   - APIBaseURL: base URL of the stats backend.
//   - PushURL: websocket URL of the live game channel.
//   - DatabasePath: path of the local credential database.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	APIBaseURL     string
	PushURL        string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5087"
	c.PushURL = "ws://localhost:5087/gamestats"
	c.DatabasePath = "courtside.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
