package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Latency is
// specified in milliseconds; after parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	SessionDSN   string `json:"session_dsn"`
	APILatencyMs *int   `json:"api_latency_ms"`
	LogLevel     string `json:"log_level"`
}

// configFilePath extracts the JSON config file path from the -c/-config
// command-line flags, or from DOCBOARD_CONFIG when no flag is given.
// Only these flags are inspected; everything else in os.Args is left for
// parseFlags.
func configFilePath() string {
	args := os.Args[1:]
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		case strings.HasPrefix(arg, "-config="):
			return strings.TrimPrefix(arg, "-config=")
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return os.Getenv("DOCBOARD_CONFIG")
}

// parseJson overlays Config with values loaded from a JSON file.
//
// If no file path is configured, nothing is loaded. Read or unmarshal errors
// panic (caller should recover if desired). Intended usage is:
// defaults -> parseEnv -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	path := configFilePath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.SessionDSN != "" {
		cfg.SessionDSN = jc.SessionDSN
	}
	if jc.APILatencyMs != nil && *jc.APILatencyMs >= 0 {
		cfg.APILatency = time.Duration(*jc.APILatencyMs) * time.Millisecond
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
