package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alissonmartineli/maintenance-tech/internal/config"
	"github.com/alissonmartineli/maintenance-tech/internal/db"
	"github.com/alissonmartineli/maintenance-tech/internal/mail"
	"github.com/alissonmartineli/maintenance-tech/internal/queue"
	"github.com/alissonmartineli/maintenance-tech/internal/worker"
	worker_handler "github.com/alissonmartineli/maintenance-tech/internal/worker/handlers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("configuration is invalid, aborting")
	}

	dbPool := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize redis pool")
	}

	mailer := mail.NewMailer(cfg)
	handler := worker_handler.NewWorkerHandler(dbPool, mailer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Flush anything that went overdue while the worker was down.
	if err := queue.NewTaskQueue(redisPool).EnqueueOverdueWorkOrderReminders(); err != nil {
		log.Error().Err(err).Msg("failed to enqueue startup reminder sweep")
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info().Msg("starting worker server...")
		if err := worker.RunWorker(ctx, redisPool, handler); err != nil {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
		dbPool.Close()
		redisPool.Close()
		log.Info().Msg("worker shutdown complete")
	case err := <-errChan:
		log.Fatal().Err(err).Msg("worker crashed")
	}
}
