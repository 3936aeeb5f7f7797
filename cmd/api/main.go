package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/lead-router/config"
	"github.com/marcelsud/lead-router/internal/http/chi"
	"github.com/marcelsud/lead-router/lead"
	leadpg "github.com/marcelsud/lead-router/lead/postgres"
	"github.com/marcelsud/lead-router/metrics"
	routingpg "github.com/marcelsud/lead-router/routing/postgres"
	"github.com/marcelsud/lead-router/webhook"
	webhookpg "github.com/marcelsud/lead-router/webhook/postgres"
	webhookredis "github.com/marcelsud/lead-router/webhook/redis"
)

const TIMEOUT = 30 * time.Second

/*
 * Imports flow one direction only: the application (api, worker) imports the
 * business layers, which import the storage layer
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	db, err := webhookpg.Open(cfg.DatabaseURL)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer db.Close()

	leadRepo := leadpg.NewRepository(db)
	ruleRepo := routingpg.NewRepository(db)
	deliveryStore := webhookpg.NewRepository(db)

	manager := webhook.NewManager(deliveryStore, webhook.NewHTTPSender())
	manager.Leads = leadRepo
	manager.BatchSize = cfg.QueueBatchSize

	// Redis is optional: without it configs are read from the database on
	// every delivery and the worker heartbeat list stays empty
	var cache *webhookredis.Cache
	if cfg.RedisAddr != "" {
		cache, err = webhookredis.NewCache(
			cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			time.Duration(cfg.ConfigCacheTTLSeconds)*time.Second,
		)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer cache.Close()
		manager.Configs = cache
	}

	leadService := lead.NewService(leadRepo, ruleRepo, manager)

	exporter, err := metrics.NewOTelExporter(metrics.NewStoreCollector(db, cache))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(ctx)

	r := chi.Handlers(ctx, leadService, manager, exporter.ServeHTTP(), cfg.CronSecret)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	default:
		errShutdown <- fmt.Errorf("forcing closing the server")
	}
}
