package main

// API server entrypoint. Loads configuration, opens the Postgres and Redis
// pools, initializes the Paseto token maker and i18n bundle, then serves the
// dashboard API with Fiber until SIGINT/SIGTERM.

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/config"
	"github.com/alissonmartineli/maintenance-tech/internal/db"
	"github.com/alissonmartineli/maintenance-tech/internal/i18n"
	"github.com/alissonmartineli/maintenance-tech/internal/middleware"
	"github.com/alissonmartineli/maintenance-tech/internal/routers"
	"github.com/alissonmartineli/maintenance-tech/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	i18nSvc := i18n.NewInitI18nService()

	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("configuration is invalid, aborting")
	}

	dbPool := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize redis pool")
	}

	paseto, err := utils.NewPasetoMaker(cfg.APP_SECRET.Paseto.HexKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize paseto maker")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	cfgStorage := routers.CfgRedisStorage{
		Host:     cfg.DATABASE.Redis.Addr,
		Password: cfg.DATABASE.Redis.Password,
	}
	routers.SetupRoutes(app, dbPool, redisPool, i18nSvc, paseto, cfgStorage)

	go func() {
		log.Info().Msgf("starting %s on port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("server closed")
			} else {
				log.Fatal().Err(err).Msg("server failed to start")
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("shutdown signal received, draining...")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("redis pool closed")
	}

	if dbPool != nil {
		dbPool.Close()
		log.Info().Msg("db pool closed")
	}

	log.Info().Msg("server shut down cleanly")
}
