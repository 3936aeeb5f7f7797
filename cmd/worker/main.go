package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/lead-router/config"
	leadpg "github.com/marcelsud/lead-router/lead/postgres"
	"github.com/marcelsud/lead-router/webhook"
	webhookpg "github.com/marcelsud/lead-router/webhook/postgres"
	webhookredis "github.com/marcelsud/lead-router/webhook/redis"
	"github.com/rs/zerolog"
)

/* Queue worker: polls the retry queue and processes due entries
 * Runs alongside the API (which drains via the cron endpoint); the claim
 * step in the store makes the two safe to overlap
 */

func main() {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "lead-router-worker").
		Logger()

	cfg, err := config.GetConfig()
	if err != nil {
		logger.Error().Err(err).Msg("loading config")
		return
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	db, err := webhookpg.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Error().Err(err).Msg("connecting to postgres")
		return
	}
	defer db.Close()

	leadRepo := leadpg.NewRepository(db)
	manager := webhook.NewManager(webhookpg.NewRepository(db), webhook.NewHTTPSender())
	manager.Leads = leadRepo
	manager.BatchSize = cfg.QueueBatchSize

	var cache *webhookredis.Cache
	if cfg.RedisAddr != "" {
		cache, err = webhookredis.NewCache(
			cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			time.Duration(cfg.ConfigCacheTTLSeconds)*time.Second,
		)
		if err != nil {
			logger.Error().Err(err).Msg("connecting to redis")
			return
		}
		defer cache.Close()
		manager.Configs = cache
	}

	workerID := uuid.New().String()
	interval := time.Duration(cfg.WorkerPollIntervalSeconds) * time.Second
	logger.Info().
		Str("worker_id", workerID).
		Dur("poll_interval", interval).
		Msg("worker started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str("worker_id", workerID).Msg("worker stopping")
			return
		case <-ticker.C:
			heartbeat(ctx, cache, workerID, "processing")

			processed, err := manager.ProcessQueue(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("processing queue")
			} else if processed > 0 {
				logger.Info().Int("processed", processed).Msg("queue drained")
			}

			heartbeat(ctx, cache, workerID, "idle")
		}
	}
}

func heartbeat(ctx context.Context, cache *webhookredis.Cache, workerID, status string) {
	if cache == nil {
		return
	}
	_ = cache.SetWorkerHeartbeat(ctx, workerID, status)
}
