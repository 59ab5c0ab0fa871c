package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// An optional .env file in the working directory is loaded first; a missing
// file is not an error.
//
// Recognized variables:
//
//	DOCBOARD_SESSION_DSN     SQLite DSN for the session store
//	DOCBOARD_API_LATENCY_MS  artificial service latency in milliseconds
//	DOCBOARD_LOG_LEVEL       debug/info/warn/error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("DOCBOARD_SESSION_DSN"); v != "" {
		cfg.SessionDSN = v
	}
	if v := os.Getenv("DOCBOARD_API_LATENCY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.APILatency = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("DOCBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
