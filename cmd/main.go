package main

import (
	"ClinicDesk/cache"
	"ClinicDesk/config"
	"ClinicDesk/database"
	"ClinicDesk/logging"
	"ClinicDesk/metrics"
	"ClinicDesk/repositories"
	"ClinicDesk/routes"
	"ClinicDesk/services"
	"ClinicDesk/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, logger *logging.Logger) error {
	ctx := context.Background()

	policy, err := services.ParseSyncPolicy(cfg.ToothChartSync)
	if err != nil {
		return err
	}

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	store, err := services.NewClinicStore(ctx, repositories.NewClinicDocuments(repo), services.Options{
		SyncPolicy: policy,
		Logger:     logger,
		Metrics:    metrics.NewStoreMetrics(registry),
	})
	if err != nil {
		return fmt.Errorf("failed to load clinic store: %w", err)
	}

	issuer, err := utils.NewTokenIssuer(cfg.SessionSecret)
	if err != nil {
		return err
	}

	handler := routes.SetupRoutes(store, cfg, logger, issuer, registry)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	serveErr := make(chan error, 1)

	go func() {
		defer wg.Done()
		logger.Info("starting server", "addr", srv.Addr, "storage", cfg.StorageBackend, "sync_policy", string(policy))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Graceful shutdown handling
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
	case err := <-serveErr:
		return fmt.Errorf("listenAndServe(): %w", err)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	logger.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	wg.Wait()
	logger.Info("server exited gracefully")
	return nil
}

// openRepository connects the document storage selected by STORAGE_BACKEND.
// The returned func releases its connections.
func openRepository(ctx context.Context, cfg *config.AppConfig, logger *logging.Logger) (repositories.DocumentRepository, func(), error) {
	switch cfg.StorageBackend {
	case "memory", "":
		logger.Warn("using in-memory storage, data is lost on restart")
		return repositories.NewMemoryRepository(), func() {}, nil

	case "redis":
		if cfg.RedisURL == "" {
			return nil, nil, errors.New("missing REDIS_URL environment variable")
		}
		client, err := database.NewRedisClient(ctx, database.RedisConfig{
			URL:          cfg.RedisURL,
			PoolSize:     cfg.RedisPoolSize,
			DialTimeout:  cfg.RedisDialTimeout,
			MinIdleConns: cfg.RedisMinIdleConns,
			ReadTimeout:  cfg.RedisReadTimeout,
			MaxRetries:   cfg.RedisMaxRetries,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
		c, err := cache.NewCache(client, "clinicdesk:")
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
		return repositories.NewRedisRepository(c), func() { client.Close() }, nil

	case "postgres":
		if cfg.DBURL == "" {
			return nil, nil, errors.New("missing DB_URL environment variable")
		}
		db, err := database.InitDB(ctx, cfg.DBURL, cfg.IsDevelopment())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return repositories.NewPostgresRepository(db), closeDB, nil
	}
	return nil, nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
}
