package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/birddigital/cachecontrol/internal/config"
	"github.com/birddigital/cachecontrol/internal/logger"
	"github.com/birddigital/cachecontrol/internal/metrics"
	"github.com/birddigital/cachecontrol/internal/server"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "staticserve",
		Short: "Static file server with content-type aware Cache-Control headers",
		Long: `staticserve serves a directory of static assets over HTTP and attaches
Cache-Control headers to responses whose content type is configured as
cacheable (CSS, JavaScript, SVG, WebP, WOFF2 and PNG by default).`,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if err := logger.Initialize(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	log := logger.Logger
	log.Info().
		Str("version", version).
		Str("static_dir", cfg.Server.StaticDir).
		Dur("cache_max_age", cfg.Cache.MaxAge).
		Msg("Starting staticserve")

	// Metrics
	var serveMetrics *metrics.ServeMetrics
	var metricsServer *metrics.Server
	if cfg.Monitoring.Enabled {
		registry := prometheus.NewRegistry()
		serveMetrics = metrics.NewServeMetrics(registry)
		metricsServer = metrics.NewMetricsServer(cfg.MetricsPort(), registry, log)

		go func() {
			if err := metricsServer.Start(); err != nil {
				log.Error().Err(err).Msg("Metrics server failed")
			}
		}()
	}

	// HTTP server
	cacheCfg := server.CacheConfigFromExtensions(cfg.Cache)
	router := server.NewRouter(cfg, cacheCfg, serveMetrics, log)
	srv := server.New(cfg.ServerPort(), router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Metrics server shutdown failed")
		}
	}

	log.Info().Msg("Shutdown complete")
	return nil
}
