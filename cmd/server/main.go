package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/valo-rant/community-api/internal/api"
	"github.com/valo-rant/community-api/internal/auth"
	"github.com/valo-rant/community-api/internal/core/service"
	"github.com/valo-rant/community-api/internal/infrastructure/catalog"
	"github.com/valo-rant/community-api/internal/infrastructure/kv"
	"github.com/valo-rant/community-api/internal/pkg/config"
	"github.com/valo-rant/community-api/internal/store/memory"
	"github.com/valo-rant/community-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	policy := auth.ClaimPolicy{}

	// Authoritative state is memory-resident: collections reset on restart,
	// except the patch notes which start from their seed.
	postStore := memory.NewPostStore(policy)
	patchStore := memory.NewPatchStore(policy, memory.DefaultPatches())
	userStore := memory.NewUserStore()

	identity := service.NewIdentityService(userStore, service.Base64Codec{}, log)

	catalogClient := catalog.NewClient(cfg.Catalog.URL, log)
	catalogService := service.NewCatalogService(
		catalogClient,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
		log,
	)

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := kv.Connect(ctx, kv.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		cancel()
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, continuing without it")
		} else {
			redisClient = client
			defer redisClient.Close()
		}
	}

	e := api.NewRouter(api.Dependencies{
		Logger:        log,
		Identity:      identity,
		Posts:         postStore,
		Patches:       patchStore,
		Catalog:       catalogService,
		CatalogClient: catalogClient,
		Redis:         redisClient,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down")
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
