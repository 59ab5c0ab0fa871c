// Package config handles configuration for the docboard CLI,
// including defaults, .env/environment overlay, JSON overlay,
// and command-line flags.
package config

import "time"

// Config holds runtime settings for the docboard CLI.
//
// Fields:
//   - SessionDSN: SQLite DSN for the durable session store.
//   - APILatency: artificial delay applied by in-memory services to
//     emulate backend latency.
//   - LogLevel: one of debug/info/warn/error.
type Config struct {
	SessionDSN string
	APILatency time.Duration
	LogLevel   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.SessionDSN = "docboard.db"
	c.APILatency = 500 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), an optional JSON file,
// and finally command-line flags. Later sources take precedence over earlier
// ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
