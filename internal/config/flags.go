package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   SQLite DSN for the session store (default from Config)
//	-l int      artificial service latency in milliseconds (default from Config)
//	-v string   log level: debug/info/warn/error (default from Config)
//	-c string   path to a JSON config file (consumed by parseJson)
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("docboard", flag.ContinueOnError)

	var configFile string
	fs.StringVar(&configFile, "c", "", "path to JSON config file")
	fs.StringVar(&configFile, "config", "", "path to JSON config file")

	fs.StringVar(&cfg.SessionDSN, "d", cfg.SessionDSN, "SQLite DSN for the session store")
	latencyMs := fs.Int("l", int(cfg.APILatency.Milliseconds()), "service latency (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug/info/warn/error)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}

	cfg.APILatency = time.Duration(*latencyMs) * time.Millisecond
}
