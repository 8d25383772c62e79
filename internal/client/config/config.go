// Package config handles configuration for the CLI client, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the MealKeeper CLI.
//
// Fields:
//   - ServerBaseURL: base address of the backend HTTP API.
//   - RequestTimeout: fixed per-request timeout of the HTTP client.
//   - DatabaseFile: path of the local sqlite database.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabaseFile   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8081"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseFile = "mealkeeper.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
