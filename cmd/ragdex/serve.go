package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/classifier"
	"github.com/ragdex/ragdex/internal/config"
	dbredis "github.com/ragdex/ragdex/internal/db/redis"
	logpkg "github.com/ragdex/ragdex/internal/logger"
	"github.com/ragdex/ragdex/internal/metrics"
	filerepo "github.com/ragdex/ragdex/internal/repository/file"
	memoryrepo "github.com/ragdex/ragdex/internal/repository/memory"
	"github.com/ragdex/ragdex/internal/repository/redisdoc"
	chiTransport "github.com/ragdex/ragdex/internal/transport/chi"
	documentuc "github.com/ragdex/ragdex/internal/usecase/document"
	healthuc "github.com/ragdex/ragdex/internal/usecase/health"
	routeruc "github.com/ragdex/ragdex/internal/usecase/router"
	searchuc "github.com/ragdex/ragdex/internal/usecase/search"
	"github.com/ragdex/ragdex/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return runServe(cfg)
	},
}

func runServe(cfg config.Config) error {
	logger, err := logpkg.New(resolveEnv(), cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting ragdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("store_driver", cfg.Store.Driver),
	)

	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterRoutingMetrics()

	// Document store by driver. The redis store doubles as the
	// embedding cache backend.
	var (
		repo    repository
		cacheKV cacheStore
		closer  func()
	)
	switch cfg.Store.Driver {
	case "memory":
		repo = memoryrepo.New()
	case "file":
		fr, err := filerepo.New(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("open file store: %w", err)
		}
		repo = fr
	case "redis":
		store, err := dbredis.NewStore(dbredis.Config{
			Addrs:    cfg.Store.Addrs,
			Password: cfg.Store.Password,
		})
		if err != nil {
			return fmt.Errorf("create redis store: %w", err)
		}
		readiness := time.Duration(cfg.Store.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(context.Background(), readiness); err != nil {
			store.Close()
			return fmt.Errorf("redis not ready: %w", err)
		}
		repo = redisdoc.New(store, cfg.Store.KeyPrefix)
		cacheKV = store
		closer = store.Close
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if closer != nil {
		defer closer()
	}
	logger.Info("Document store ready", zap.String("driver", cfg.Store.Driver))

	baseEmbedder := buildEmbedder(cfg, cacheKV, logger)
	docEmbedder := withInstruction(baseEmbedder, cfg.Embedding.DocumentInstruction)
	queryEmbedder := withInstruction(baseEmbedder, cfg.Embedding.QueryInstruction)
	generator := buildGenerator(cfg, logger)
	webSearch := buildWebSearch(cfg, logger)

	docSvc := documentuc.New(repo, docEmbedder, cfg.Embedding.Dimensions)
	searchSvc := searchuc.New(repo, queryEmbedder,
		cfg.Retrieval.TopK, cfg.Retrieval.MinScore, cfg.Store.Driver, logger)

	routerSvc := routeruc.New(
		classifier.New(),
		searchuc.NewDefaultSearcher(searchSvc),
		webSearch,
		generator,
		routeruc.Config{
			Overrides:       cfg.StrategyOverrides(),
			WebTimeout:      time.Duration(cfg.WebSearch.TimeoutSec) * time.Second,
			WebMaxResults:   cfg.WebSearch.MaxResults,
			MaxContextChars: cfg.Retrieval.MaxContextChars,
		},
		logger,
	)

	healthSvc := healthuc.New(repo, embedderHealth(baseEmbedder), generator)

	server := chiTransport.NewServer(docSvc, searchSvc, routerSvc, healthSvc, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Routes(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}
	logger.Info("Server stopped gracefully")
	return nil
}
