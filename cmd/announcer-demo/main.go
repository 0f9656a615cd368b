package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/liveannouncer/pkg/announcer"
	"github.com/dmitrymomot/liveannouncer/pkg/config"
	"github.com/dmitrymomot/liveannouncer/pkg/httpserver"
	"github.com/dmitrymomot/liveannouncer/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithLevel(cfg.LogLevel),
		logger.WithContextExtractors(requestIDExtractor),
	)
	logger.SetAsDefault(log)

	ctx, store, cancel := announcer.NewScope(context.Background(),
		announcer.WithClearDelay(cfg.Announcer.ClearDelay),
		announcer.WithLogger(log.With(slog.String("component", "announcer"))),
	)
	defer cancel()

	srv := httpserver.New(
		httpserver.WithAddr(cfg.HTTPAddr),
		httpserver.WithLogger(log),
		httpserver.WithShutdownHook(func(context.Context) error { return store.Close() }),
	)

	if err := srv.Run(ctx, newRouter(ctx, cfg, store, log)); err != nil {
		log.Error("http server failed", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}
