package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"delstarford/internal/config"
	"delstarford/internal/email"
	"delstarford/internal/leads"
	"delstarford/internal/logger"
	"delstarford/internal/server"
	"delstarford/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.IsDev())
	log := logger.Global()

	// Record store: Redis when configured, in-process otherwise. The store
	// is a best-effort backup, so a dev setup without Redis still works.
	var recordStore store.Store
	if cfg.RedisURL != "" {
		redisStore, err := store.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("record store connection failed")
		}
		recordStore = redisStore
		log.Info().Msg("record store: redis")
	} else {
		recordStore = store.NewMemory()
		log.Warn().Msg("record store: in-memory (REDIS_URL not set, records are not durable)")
	}
	defer recordStore.Close()

	// Product catalogue
	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("catalogue load failed")
	}
	log.Info().Int("products", len(catalog)).Msg("catalogue loaded")

	// Lead intake workflow
	emailService := email.NewService(cfg)
	leadService := leads.NewService(emailService, recordStore, email.NewTemplates(cfg))

	srv := server.New(cfg)
	srv.RegisterRoutes(leadService, recordStore, catalog)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", cfg.ServerAddr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
