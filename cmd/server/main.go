// @title Quill API
// @version 1.0
// @description Feed ingestion, AI rewriting and publishing pipeline.
// @BasePath /api
package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quill/backend/internal/config"
	"quill/backend/internal/db"
	"quill/backend/internal/handler"
	transport "quill/backend/internal/http"
	"quill/backend/internal/lock"
	"quill/backend/internal/logger"
	"quill/backend/internal/network"
	"quill/backend/internal/repository"
	"quill/backend/internal/scheduler"
	"quill/backend/internal/service"
	"quill/backend/internal/service/ai"
	"quill/backend/internal/snowflake"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", err)
	}
	if err := snowflake.Init(cfg.NodeID); err != nil {
		fatal("init snowflake", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		fatal("open database", err)
	}
	defer dbConn.Close()

	repos := repository.NewRepositories(dbConn)
	tx := repository.NewTransactor(dbConn)
	clients := network.NewClientFactory(network.StaticProxy(cfg.ProxyURL)).
		WithHostLimiter(network.NewHostLimiter(cfg.FetchHostInterval))

	locker := lock.Locker(lock.NewLocalLocker())
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := lock.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			fatal("connect redis", err)
		}
		defer redisClient.Close()
		locker = lock.Chain{locker, lock.NewRedisLocker(redisClient)}
		logger.Info("distributed job leases enabled", "module", "app", "action", "start", "resource", "redis", "result", "ok")
	}

	rateLimiter := ai.NewRateLimiter(cfg.AI.QPS)

	settingsService := service.NewSettingsService(repos.Settings, repos.Publishing, cfg.AI, rateLimiter)
	sourceService := service.NewSourceService(repos.Sources)
	reviewService := service.NewReviewService(repos.Items)
	fetchService := service.NewFetchService(repos.Sources, repos.Items, clients, cfg.FetchTimeout, cfg.FetchConcurrency)
	generationService := service.NewGenerationService(repos.Items, tx, settingsService, rateLimiter, nil,
		cfg.GenerationTimeout, cfg.GenerationWorkers, cfg.GenerationBatch)
	publishService := service.NewPublishService(repos.Items, tx)
	autoPublishService := service.NewAutoPublishService(repos.Publishing, repos.Items, repos.Posts, publishService, cfg.PublishQuotaWindow)

	sched := scheduler.New(locker, nil, scheduler.PipelineJobs(cfg, fetchService, generationService, autoPublishService)...)

	router := transport.NewRouter(
		handler.NewPipelineHandler(sched),
		handler.NewItemsHandler(reviewService, generationService, publishService, settingsService),
		handler.NewSourcesHandler(sourceService, fetchService),
		handler.NewSettingsHandler(settingsService),
		dbConn,
	)

	sched.Start()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "module", "app", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr)
		errCh <- router.Start(cfg.Addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "module", "app", "action", "stop", "resource", "server", "result", "ok", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("server stopped", "module", "app", "action", "stop", "resource", "http", "result", "failed", "error", err)
		}
	}

	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(ctx); err != nil {
		logger.Error("http shutdown", "module", "app", "action", "stop", "resource", "http", "result", "failed", "error", err)
	}
}

func fatal(msg string, err error) {
	logger.Error(msg, "module", "app", "action", "start", "resource", "server", "result", "failed", "error", err)
	os.Exit(1)
}
