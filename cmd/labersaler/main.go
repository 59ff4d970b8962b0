package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/beantz/labersaler/internal/buildinfo"
	"github.com/beantz/labersaler/internal/client/cli"
	"github.com/beantz/labersaler/internal/client/config"
	"github.com/beantz/labersaler/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// A missing .env is fine; the defaults and flags still apply.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
