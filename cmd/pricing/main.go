// Command pricing runs the Pricing Aggregator: the streaming fan-out over
// a static, env-configured vendor set, backed by an adaptive worker pool
// and a traffic metrics subsystem. Lifecycle mirrors the teacher's
// cmd/api/main.go (config -> wiring -> dual listener -> signal wait ->
// graceful drain).
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	"github.com/quoteforge/platform/internal/config"
	"github.com/quoteforge/platform/internal/grpcserver"
	"github.com/quoteforge/platform/internal/logging"
	"github.com/quoteforge/platform/internal/pricing"
	"github.com/quoteforge/platform/internal/pricing/metrics"
	"github.com/quoteforge/platform/internal/pricing/pool"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
	"github.com/quoteforge/platform/internal/vendorset"
)

func main() {
	grpcPort := config.String("PORT", "9000")
	metricsPort := config.String("METRICS_PORT", "10000")
	logLevel := config.String("LOG_LEVEL", "info")
	environment := config.String("ENVIRONMENT", "development")

	logger := logging.New("pricing", logLevel, environment)

	endpoints, err := vendorset.Parse(config.String("VENDORS", ""))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse VENDORS")
	}
	if len(endpoints) == 0 {
		logger.Fatal().Msg("no vendors configured, refusing to start")
	}
	logger.Info().Int("vendor_count", len(endpoints)).Msg("vendor set loaded")

	poolCfg := pool.Config{
		QueueCapacity: config.Int("QUEUE_CAPACITY", 2048),
		MinWorkers:    config.Int("ADAPTIVE_MIN", 8),
		MaxWorkers:    config.Int("ADAPTIVE_MAX", 64),
		Step:          config.Int("ADAPTIVE_STEP", 8),
		TargetUpMs:    config.Int("TARGET_P95_MS", 250),
		TargetDownMs:  config.Int("LOWER_P95_MS", 200),
		TickInterval:  5 * time.Second,
		Cooldown:      20 * time.Second,
		IdleTimeout:   60 * time.Second,
	}

	latencyWindow := metrics.NewLatencyWindow(config.Int("LAT_WINDOW", 2000))
	recentWindow := metrics.NewRecentWindow(60*time.Second, 1000)
	workerPool := pool.New(poolCfg, latencyWindow, logger)
	defer workerPool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := grpcserver.New(logger)
	pricing.Register(ctx, server, pricing.Deps{
		Endpoints: endpoints,
		Pool:      workerPool,
		Latency:   latencyWindow,
		Recent:    recentWindow,
		Logger:    logger,
	})

	if environment == "development" {
		reflection.Register(server)
	}

	go func() {
		listener, err := net.Listen("tcp", ":"+grpcPort)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create grpc listener")
		}
		logger.Info().Str("port", grpcPort).Msg("grpc server listening")
		if err := server.Serve(listener); err != nil {
			logger.Fatal().Err(err).Msg("grpc server failed")
		}
	}()

	gauges := metrics.NewPromGauges()
	httpServer := &http.Server{
		Addr:    ":" + metricsPort,
		Handler: metrics.Handler(recentWindow, latencyWindow, gauges),
	}
	go func() {
		logger.Info().Str("port", metricsPort).Msg("metrics http server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("metrics http server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	cancel()
	server.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("metrics http server shutdown failed")
	}
	logger.Info().Msg("shutdown complete")
}
