package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dkhromov/docboard/internal/cli"
	"github.com/dkhromov/docboard/internal/config"
	"github.com/dkhromov/docboard/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	logger := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(context.Background())
}
